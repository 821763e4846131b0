package recommender

import (
	"NopeNet/internal/model"
)

type entry struct {
	id   int
	text string
}

var catalog = map[model.AttackType]entry{
	model.AttackDOS: {1, "Apply rate limiting and firewall rules to block suspicious IPs. " +
		"Consider implementing DDoS protection services."},
	model.AttackProbe: {2, "Configure port scan detection, implement port knocking, and hide service " +
		"fingerprints to prevent information disclosure."},
	model.AttackR2L: {3, "Update authentication mechanisms, implement multi-factor authentication, " +
		"and review access controls for all remote services."},
	model.AttackU2R: {4, "Apply security patches regularly, implement least privilege principles, " +
		"and use application sandboxing to limit privilege escalation."},
	model.AttackNormal: {5, "No specific threats detected. Continue monitoring and maintain regular " +
		"security updates and backups."},
}

// Recommend returns one entry per attack category present in results, in the
// fixed order DOS, Probe, R2L, U2R. A batch without attacks gets a single
// normal entry.
func Recommend(results []model.DetectionResult) []model.Recommendation {
	present := make(map[model.AttackType]bool)
	for _, r := range results {
		if r.AttackType.IsAttack() {
			present[r.AttackType] = true
		}
	}

	var recs []model.Recommendation
	for _, t := range model.AttackTypes() {
		if present[t] {
			recs = append(recs, recommendation(t))
		}
	}

	if len(recs) == 0 {
		recs = append(recs, recommendation(model.AttackNormal))
	}
	return recs
}

// For returns the canned recommendation for a single category.
func For(t model.AttackType) (model.Recommendation, bool) {
	if _, ok := catalog[t]; !ok {
		return model.Recommendation{}, false
	}
	return recommendation(t), true
}

func recommendation(t model.AttackType) model.Recommendation {
	e := catalog[t]
	return model.Recommendation{ID: e.id, AttackType: t, Text: e.text}
}
