package main

import (
	"flag"
	"os"

	"github.com/contactkeval/option-greeks/internal/config"
	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/pricing"
	"github.com/contactkeval/option-greeks/internal/report"
)

func main() {
	configPath := flag.String("config", "", "path to scenario JSON (optional; see examples/tsla.json)")
	typ := flag.String("type", "", "contract type: call or put (overrides scenario)")
	spot := flag.String("S", "", "spot price override (number or expression)")
	strike := flag.String("K", "", "strike price override (number or expression)")
	rate := flag.String("r", "", "risk-free rate override (number or expression, e.g. 1/100)")
	years := flag.String("t", "", "time to expiry in years (number or expression, e.g. 42/365)")
	vol := flag.String("sigma", "", "implied volatility override (number or expression)")
	asJSON := flag.Bool("json", false, "emit the summary as JSON instead of text")
	verbosity := flag.Int("v", 1, "verbosity: 0=error 1=info 2=debug 3=trace")
	flag.Parse()

	logger.SetVerbosity(*verbosity)

	scn := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("loading scenario: %v", err)
		}
		scn = loaded
	}

	override(&scn.Spot, *spot)
	override(&scn.Strike, *strike)
	override(&scn.Rate, *rate)
	override(&scn.Years, *years)
	override(&scn.Vol, *vol)
	if *typ != "" {
		scn.Type = *typ
	}

	m, err := scn.MarketInputs()
	if err != nil {
		fatalf("invalid scenario: %v", err)
	}
	contract, err := scn.ContractType()
	if err != nil {
		fatalf("invalid scenario: %v", err)
	}

	aux, err := pricing.ComputeAuxiliaries(m)
	if err != nil {
		fatalf("computing auxiliaries: %v", err)
	}
	logger.Debugf("d1=%f d2=%f", aux.D1, aux.D2)

	call, put, err := pricing.Price(m, aux)
	if err != nil {
		fatalf("pricing: %v", err)
	}
	greeks, err := pricing.ComputeGreeks(m, aux, contract)
	if err != nil {
		fatalf("computing greeks: %v", err)
	}

	summary := report.BuildSummary(m, aux, call, put, greeks, contract)
	if *asJSON {
		err = summary.WriteJSON(os.Stdout)
	} else {
		err = summary.Render(os.Stdout)
	}
	if err != nil {
		fatalf("writing summary: %v", err)
	}
}

// override replaces dst with the evaluated flag value, if one was given.
func override(dst *config.Number, flagVal string) {
	if flagVal == "" {
		return
	}
	f, err := config.EvalNumber(flagVal)
	if err != nil {
		fatalf("invalid flag value: %v", err)
	}
	*dst = config.Number(f)
}

func fatalf(format string, args ...any) {
	logger.Errorf(format, args...)
	os.Exit(1)
}
