package entities

import "strings"

const (
	PlanTrial   = "14-Day Trial"
	PlanStarter = "Starter Plan"
	PlanGrowth  = "Growth Plan"
	PlanUnknown = "Unknown Plan"
)

// planByAmountMinor maps exact checkout totals (in cents) to plan names.
var planByAmountMinor = map[int64]string{
	9700:  PlanTrial,
	49700: PlanStarter,
	99700: PlanGrowth,
}

// ClassifyPlan names the plan a purchase belongs to.
//
// An explicit plan name from checkout metadata always wins; otherwise the
// amount is looked up exactly in the price table, falling back to PlanUnknown.
func ClassifyPlan(metadataPlan string, amountMinor int64) string {
	if p := strings.TrimSpace(metadataPlan); p != "" {
		return p
	}
	if p, ok := planByAmountMinor[amountMinor]; ok {
		return p
	}
	return PlanUnknown
}
