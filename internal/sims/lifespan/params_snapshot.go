package lifespan

import (
	"strconv"

	"lifespan-ca/internal/core"
)

const (
	paramMaxLife    = "max_life"
	paramMinParents = "min_parents"
	paramMinCycle   = "min_cycle"
)

// Parameters reports the current configuration for HUDs and logs.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	rules := w.grid.Rules()
	size := w.grid.Size()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("workers", "Workers", w.cfg.Workers),
				stringParam("decay", "Decay", rules.Decay.String()),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				intParam(paramMaxLife, "Max cell life", w.lifespans.Max()),
				intParam(paramMinParents, "Min parents to born", rules.MinParentsToBorn),
				intParam(paramMinCycle, "Min cycle to reproduce", rules.MinCycleToLiveToReproduce),
			},
		},
		{
			Name: "Colonies",
			Params: []core.Parameter{
				intParam("colonies", "Colony count", params.ColonyCount),
				intParam("colony_depth", "Colony depth", params.ColonyDepth),
				intParam("colony_start", "Colony start", params.ColonyStart),
				intParam("colony_stride", "Colony stride", params.ColonyStride),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule constants hosts may adjust at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramMaxLife, Label: "Max life", Step: 1, Min: MinLifespan, Max: MaxLifespanLimit},
		{Key: paramMinParents, Label: "Min parents", Step: 1, Min: 0, Max: 8},
		{Key: paramMinCycle, Label: "Min cycle", Step: 1, Min: 0, Max: MaxLifespanLimit},
	}
}

// SetIntParameter updates a rule constant, clamping to the control bounds.
// Changes take effect from the next generation.
func (w *World) SetIntParameter(key string, value int) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range w.ParameterControls() {
		if c.Key == key {
			ctrl, found = c, true
			break
		}
	}
	if !found {
		return false
	}
	value = ctrl.Clamp(value)

	rules := w.grid.Rules()
	switch key {
	case paramMaxLife:
		w.cfg.Params.MaxCellLifeLength = value
		w.lifespans.SetMax(value)
		w.palette = buildPalette(value)
	case paramMinParents:
		w.cfg.Params.MinParentsToBorn = value
		rules.MinParentsToBorn = value
	case paramMinCycle:
		w.cfg.Params.MinCycleToLiveToReproduce = value
		rules.MinCycleToLiveToReproduce = value
	}
	w.grid.SetRules(rules)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
