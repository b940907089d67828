package tiers

import "testing"

func TestDefinitionFor_KnownTiers(t *testing.T) {
	tests := []struct {
		key  string
		name string
	}{
		{TierFree, "Free"},
		{TierPro, "Pro"},
		{TierUltimate, "Ultimate"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			def := DefinitionFor(tt.key)
			if def == nil {
				t.Fatal("expected a definition")
			}

			if def.Name != tt.name {
				t.Errorf("Name = %q, want %q", def.Name, tt.name)
			}
		})
	}
}

func TestDefinitionFor_UnknownFallsBackToFree(t *testing.T) {
	tests := []string{"", "enterprise", "FREE", "gold"}

	for _, key := range tests {
		def := DefinitionFor(key)
		if def.Key != TierFree {
			t.Errorf("DefinitionFor(%q).Key = %q, want %q", key, def.Key, TierFree)
		}
	}
}

func TestHasFeature(t *testing.T) {
	tests := []struct {
		tier    string
		feature string
		want    bool
	}{
		{TierFree, FeatureUseAI, true},
		{TierFree, FeatureEditPrompts, false},
		{TierFree, FeatureAnalytics, false},
		{TierFree, FeatureSchedulePosts, true},
		{TierPro, FeatureEditPrompts, true},
		{TierPro, FeatureAutopilot, false},
		{TierUltimate, FeatureAutopilot, true},
		{TierUltimate, FeatureInteractiveChat, true},
		{TierUltimate, FeatureOwnAPIKeys, true},
		// absent keys are never granted
		{TierFree, "does_not_exist", false},
		{TierUltimate, "", false},
		// unknown tier resolves to free
		{"mystery", FeatureEditPrompts, false},
		{"mystery", FeatureUseAI, true},
	}

	for _, tt := range tests {
		t.Run(tt.tier+"/"+tt.feature, func(t *testing.T) {
			got := HasFeature(tt.tier, tt.feature)
			if got != tt.want {
				t.Errorf("HasFeature(%q, %q) = %v, want %v", tt.tier, tt.feature, got, tt.want)
			}
		})
	}
}

func TestHasFeature_ValueSemantics(t *testing.T) {
	// only literal true, "unlimited", or "all" grant a feature
	def := &Definition{
		Key: "probe",
		Features: map[string]any{
			"granted_bool":      true,
			"granted_unlimited": ValueUnlimited,
			"granted_all":       ValueAll,
			"denied_false":      false,
			"denied_nil":        nil,
			"denied_number":     5,
			"denied_string":     "yes",
		},
	}

	registry["probe"] = def
	defer delete(registry, "probe")

	granted := []string{"granted_bool", "granted_unlimited", "granted_all"}
	for _, f := range granted {
		if !HasFeature("probe", f) {
			t.Errorf("HasFeature(probe, %q) = false, want true", f)
		}
	}

	denied := []string{"denied_false", "denied_nil", "denied_number", "denied_string", "absent"}
	for _, f := range denied {
		if HasFeature("probe", f) {
			t.Errorf("HasFeature(probe, %q) = true, want false", f)
		}
	}
}

func TestAvailabilityAllows(t *testing.T) {
	all := Availability{All: true}
	if !all.Allows("anything") {
		t.Error("All availability should allow any key")
	}

	some := Availability{Keys: []string{"linkedin", "facebook"}}
	if !some.Allows("linkedin") {
		t.Error("expected linkedin to be allowed")
	}

	if some.Allows("tiktok") {
		t.Error("expected tiktok to be excluded")
	}
}

func TestTierLimits(t *testing.T) {
	free := DefinitionFor(TierFree)
	if free.PostsPerHour != 1 || free.ScheduledPostsPerDay != 1 {
		t.Errorf("free limits = %d posts/hour, %d scheduled/day; want 1, 1",
			free.PostsPerHour, free.ScheduledPostsPerDay)
	}

	if free.Generations.Unlimited {
		t.Error("free tier should not have unlimited generations")
	}

	ultimate := DefinitionFor(TierUltimate)
	if !ultimate.Generations.Unlimited {
		t.Error("ultimate tier should have unlimited generations")
	}

	if ultimate.Autopilot.PostsPerDay != 6 {
		t.Errorf("ultimate autopilot posts/day = %d, want 6", ultimate.Autopilot.PostsPerDay)
	}
}
