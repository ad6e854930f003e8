package donation

// Fund is one entry of the fund selector on the give page.
type Fund struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var funds = []Fund{
	{ID: "tithe", Label: "Tithe"},
	{ID: "offering", Label: "Offering"},
	{ID: "missions", Label: "Missions"},
	{ID: "building", Label: "Building Fund"},
}

// ChipAmountsCents are the quick-pick amounts offered above the amount field.
var ChipAmountsCents = []int64{2500, 5000, 10000, 25000}

func Funds() []Fund {
	out := make([]Fund, len(funds))
	copy(out, funds)
	return out
}

// FundLabel resolves a fund id to its display label; unknown ids fall back
// to the id itself so a stale saved preference still renders.
func FundLabel(id string) string {
	for _, f := range funds {
		if f.ID == id {
			return f.Label
		}
	}
	return id
}
