package prefabs

import "testing"

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}

	if spec.MaxSpeed != 80 {
		t.Fatalf("max_speed = %v, want 80", spec.MaxSpeed)
	}
	if spec.Acceleration != 500 {
		t.Fatalf("acceleration = %v, want 500", spec.Acceleration)
	}
	if spec.Friction != 500 {
		t.Fatalf("friction = %v, want 500", spec.Friction)
	}
	if spec.RollSpeed != 120 {
		t.Fatalf("roll_speed = %v, want 120", spec.RollSpeed)
	}

	if _, ok := spec.Animation.Defs[spec.Animation.Current]; !ok {
		t.Fatalf("initial animation %q not defined", spec.Animation.Current)
	}
	for _, base := range []string{"idle", "run", "attack", "roll"} {
		for _, dir := range []string{"_down", "_up", "_left", "_right"} {
			if _, ok := spec.Animation.Defs[base+dir]; !ok {
				t.Fatalf("missing animation def %s%s", base, dir)
			}
		}
	}

	if len(spec.Hitboxes) == 0 {
		t.Fatalf("player has no sword hitbox")
	}
	if spec.Hitboxes[0].Anim != "attack" {
		t.Fatalf("sword hitbox anim = %q, want attack", spec.Hitboxes[0].Anim)
	}
	if len(spec.Hurtboxes) == 0 {
		t.Fatalf("player has no hurtbox")
	}
}

func TestLoadBatSpec(t *testing.T) {
	spec, err := LoadBatSpec()
	if err != nil {
		t.Fatalf("load bat spec: %v", err)
	}

	if spec.KnockbackDecay != 200 {
		t.Fatalf("knockback_decay = %v, want 200", spec.KnockbackDecay)
	}
	if spec.KnockbackMultiplier != 120 {
		t.Fatalf("knockback_multiplier = %v, want 120", spec.KnockbackMultiplier)
	}
	if spec.Script == "" {
		t.Fatalf("bat has no behavior script")
	}
	if _, err := LoadScript(spec.Script); err != nil {
		t.Fatalf("bat script %q not loadable: %v", spec.Script, err)
	}
	if spec.FollowRange <= 0 {
		t.Fatalf("follow_range = %v, want > 0", spec.FollowRange)
	}
}

func TestLoadSpecUnknownFile(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected error for unknown spec file")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"bat.tengo":                 "scripts/bat.tengo",
		"scripts/bat.tengo":         "scripts/bat.tengo",
		"prefabs/scripts/bat.tengo": "scripts/bat.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
