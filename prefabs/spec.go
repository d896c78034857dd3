package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals a prefab spec by file name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name         string          `yaml:"name"`
	MaxSpeed     float64         `yaml:"max_speed"`
	Acceleration float64         `yaml:"acceleration"`
	Friction     float64         `yaml:"friction"`
	RollSpeed    float64         `yaml:"roll_speed"`
	Health       int             `yaml:"health"`
	Transform    TransformSpec   `yaml:"transform"`
	Collider     ColliderSpec    `yaml:"collider"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	Animation    AnimationSpec   `yaml:"animation"`
	Hitboxes     []HitboxSpec    `yaml:"hitboxes"`
	Hurtboxes    []HurtboxSpec   `yaml:"hurtboxes"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BatSpec struct {
	Name                string        `yaml:"name"`
	KnockbackDecay      float64       `yaml:"knockback_decay"`
	KnockbackMultiplier float64       `yaml:"knockback_multiplier"`
	WanderSpeed         float64       `yaml:"wander_speed"`
	ChaseSpeed          float64       `yaml:"chase_speed"`
	FollowRange         float64       `yaml:"follow_range"`
	Script              string        `yaml:"script"`
	Health              int           `yaml:"health"`
	Transform           TransformSpec `yaml:"transform"`
	Collider            ColliderSpec  `yaml:"collider"`
	Sprite              SpriteSpec    `yaml:"sprite"`
	Animation           AnimationSpec `yaml:"animation"`
	Hitboxes            []HitboxSpec  `yaml:"hitboxes"`
	Hurtboxes           []HurtboxSpec `yaml:"hurtboxes"`
}

func LoadBatSpec() (*BatSpec, error) {
	spec, err := LoadSpec[BatSpec]("bat.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type SpriteSpec struct {
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type HitboxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Damage  int     `yaml:"damage"`
	Anim    string  `yaml:"anim"`
	Frames  []int   `yaml:"frames"`
}

type HurtboxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}
