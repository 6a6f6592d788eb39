package thermo

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Kinetics
// ─────────────────────────────────────────────────────────────────────────────

// RateOrderEstimate is a stoichiometry-based guess at the rate law.  It is a
// heuristic: mechanisms with intermediates routinely deviate from it.
type RateOrderEstimate struct {
	OverallOrder     float64            `json:"overall_order"`
	IndividualOrders map[string]float64 `json:"individual_orders"`
}

// EstimateRateOrder guesses the rate order from the reactant count: one
// reactant reads as unimolecular, two as bimolecular, more fall back to the
// stoichiometric coefficients.  Catalysts are excluded.
func EstimateRateOrder(r *reaction.Reaction) RateOrderEstimate {
	reactants := r.NonCatalystReactants()
	est := RateOrderEstimate{IndividualOrders: make(map[string]float64, len(reactants))}

	switch len(reactants) {
	case 0:
	case 1:
		est.OverallOrder = 1
		est.IndividualOrders[reactants[0].Formula()] = 1
	case 2:
		est.OverallOrder = 2
		for _, c := range reactants {
			est.IndividualOrders[c.Formula()] = 1
		}
	default:
		for _, c := range reactants {
			est.OverallOrder += c.Coefficient()
			est.IndividualOrders[c.Formula()] = c.Coefficient()
		}
	}
	return est
}

// ActivationEnergyResult is an Arrhenius fit over temperature/rate pairs.
type ActivationEnergyResult struct {
	ActivationEnergy     float64 `json:"activation_energy"` // kJ/mol
	PreExponentialFactor float64 `json:"pre_exponential_factor"`
	RSquared             float64 `json:"r_squared"`
	DataPoints           int     `json:"data_points"`
}

// ActivationEnergy fits ln k = ln A − Ea/(RT) by linear regression of ln k
// against 1/T.  Pairs with a non-positive temperature or rate constant are
// discarded; at least two usable pairs are required.
func ActivationEnergy(rateConstants map[float64]float64) (ActivationEnergyResult, error) {
	var invTemps, lnRates []float64
	for temp, k := range rateConstants {
		if temp <= 0 || k <= 0 {
			continue
		}
		invTemps = append(invTemps, 1/temp)
		lnRates = append(lnRates, math.Log(k))
	}
	if len(invTemps) < 2 {
		return ActivationEnergyResult{}, errors.New(errors.CodeInsufficientData,
			"activation energy needs at least two positive temperature/rate pairs")
	}

	alpha, beta := stat.LinearRegression(invTemps, lnRates, nil, false)
	return ActivationEnergyResult{
		ActivationEnergy:     -beta * GasConstant / 1000.0,
		PreExponentialFactor: math.Exp(alpha),
		RSquared:             stat.RSquared(invTemps, lnRates, nil, alpha, beta),
		DataPoints:           len(invTemps),
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Stoichiometric analysis
// ─────────────────────────────────────────────────────────────────────────────

// AtomEconomy returns the mass share of the first product in percent,
// treating it as the desired product.
func AtomEconomy(r *reaction.Reaction) float64 {
	products := r.Products()
	if len(products) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range products {
		total += p.WeightedWeight()
	}
	if total == 0 {
		return 0
	}
	return products[0].WeightedWeight() / total * 100
}

// TheoreticalYield returns the moles of each product obtainable from the
// given moles of the limiting reactant, by stoichiometric ratio.  The
// limiting formula may be given in source or canonical form.
func TheoreticalYield(r *reaction.Reaction, limiting string, moles float64) (map[string]float64, error) {
	if err := requireBalanced(r); err != nil {
		return nil, err
	}

	var limitingComponent *reaction.Component
	for _, c := range r.NonCatalystReactants() {
		if c.Formula() == limiting || c.Composition().Formula() == limiting {
			limitingComponent = c
			break
		}
	}
	if limitingComponent == nil {
		return nil, errors.New(errors.CodeThermodynamics, "limiting reactant not found in reaction").
			WithDetail(limiting)
	}

	yields := make(map[string]float64, len(r.Products()))
	for _, p := range r.Products() {
		yields[p.Formula()] = moles * p.Coefficient() / limitingComponent.Coefficient()
	}
	return yields, nil
}
