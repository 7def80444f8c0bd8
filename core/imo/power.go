package imo

import (
	"fmt"
	"math"

	"github.com/jorundf/cetus/core/model"
)

// Hull performance corrections from the IMO Fourth GHG Study: etaWeather
// accounts for average weather, etaFouling for hull and propeller
// fouling. Both increase the power demanded relative to calm-water trial
// conditions.
const (
	etaWeather = 0.909
	etaFouling = 0.917

	// draftExponent scales power with the draft ratio; speed enters cubed.
	draftExponent = 0.66

	// minSFCLoad is the lowest load at which the SFC correction curve is
	// considered reliable. Lower loads are evaluated at this point.
	minSFCLoad = 0.07
)

// effectiveInstalledPower is the propulsion power available in one
// direction of travel. Double-ended vessels drive with half of their
// engines at a time.
func effectiveInstalledPower(v model.VesselData) float64 {
	p := v.TotalInstalledPower()
	if v.DoubleEnded {
		return p / 2
	}
	return p
}

// propulsionPower returns the power demand in kW and the resulting load
// fraction for one voyage leg, following the admiralty-style relation of
// the IMO Fourth GHG Study: power scales with the draft ratio to the 0.66
// and the speed ratio cubed, divided by the weather and fouling
// corrections.
//
// A load fraction above 1 means the leg demands more than the installed
// power and is rejected with a DomainComputationError.
func propulsionPower(v model.VesselData, leg model.VoyageLeg) (powerKW, load float64, err error) {
	installed := effectiveInstalledPower(v)
	draftRatio := math.Pow(leg.Draft/v.DesignDraft, draftExponent)
	speedRatio := math.Pow(leg.Speed/v.DesignSpeed, 3)
	powerKW = installed * draftRatio * speedRatio / (etaWeather * etaFouling)
	load = powerKW / installed
	if load > 1 {
		return 0, 0, &model.DomainComputationError{
			Op: "propulsion power",
			Detail: fmt.Sprintf("leg at %g kn and %g m draft demands %.0f kW, above the installed %.0f kW (load %.2f)",
				leg.Speed, leg.Draft, powerKW, installed, load),
		}
	}
	return powerKW, load, nil
}

// sfcAtLoad applies the IMO load correction to a baseline SFC. The curve
// has its minimum near 80% load and rises steeply toward idle.
func sfcAtLoad(base, load float64) float64 {
	if load < minSFCLoad {
		load = minSFCLoad
	}
	return base * (0.455*load*load - 0.710*load + 1.280)
}
