package classifier

import (
	"NopeNet/internal/model"
	"strings"
)

// Rule maps a set of label keywords to an attack category.
type Rule struct {
	AttackType model.AttackType
	Keywords   []string
}

// Matches reports whether label contains any of the rule's keywords.
func (r Rule) Matches(label string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// DefaultRules returns the KDD Cup 99 attack table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{AttackType: model.AttackDOS, Keywords: []string{"neptune", "smurf", "pod", "teardrop"}},
		{AttackType: model.AttackProbe, Keywords: []string{"portsweep", "ipsweep", "satan", "nmap"}},
		{AttackType: model.AttackR2L, Keywords: []string{"guess_passwd", "ftp_write", "imap", "phf", "multihop"}},
		{AttackType: model.AttackU2R, Keywords: []string{"buffer_overflow", "rootkit", "loadmodule", "perl"}},
	}
}

// match walks rules top-down; the first rule that matches wins.
func match(rules []Rule, label string) model.AttackType {
	for _, r := range rules {
		if r.Matches(label) {
			return r.AttackType
		}
	}
	return model.AttackNormal
}
