package behavior

// Rule is one step of a priority-ordered decision policy. Try draws the
// rule's gate probability and, if it passes AND a valid target exists,
// performs the action and returns true. The first rule that fires ends
// the agent's turn; rules below it are skipped. Allegiance evaluation is
// deliberately NOT a Rule: it always gets its own draw after the chain,
// whether or not an earlier rule acted.
type Rule struct {
	Name   string
	Chance float64
	Fire   func() bool
}

// runChain evaluates rules in order with early exit and reports which
// rule, if any, fired.
func (e *Engine) runChain(rules []Rule) (string, bool) {
	for _, r := range rules {
		if e.Roll() >= r.Chance {
			continue
		}
		if r.Fire() {
			return r.Name, true
		}
	}
	return "", false
}
