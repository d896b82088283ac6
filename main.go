package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/banachtech/binomial/api"
	"github.com/banachtech/binomial/bench"
	"github.com/banachtech/binomial/config"
	"github.com/banachtech/binomial/crr"
	"github.com/banachtech/binomial/payoff"
	"github.com/joho/godotenv"
)

func main() {
	cfgPath := flag.String("config", "", "path to a yaml config file")
	serve := flag.Bool("serve", false, "start the pricing API instead of the benchmark demo")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	if *serve {
		server := api.NewServer()
		if err := server.Start(cfg.Server.Address); err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		return
	}

	kind, err := payoff.ParseKind(cfg.Scenario.Kind)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	o, err := crr.New(cfg.Scenario.Spot, cfg.Scenario.Strike, cfg.Scenario.Maturity, cfg.Scenario.Rate, cfg.Scenario.Steps, cfg.Scenario.Up, kind)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	fmt.Printf("%s N=%d scalar: %.8f\n", o.Kind, o.N, crr.PriceScalar(o))
	fmt.Printf("%s N=%d bulk:   %.8f\n", o.Kind, o.N, crr.PriceBulk(o))

	rows := bench.Sweep(o, cfg.Bench.Steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "N\tscalar\tbulk\tspeedup")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%v\t%v\t%.2fx\n", row.N, row.Scalar.Elapsed, row.Bulk.Elapsed, row.Speedup())
	}
	w.Flush()
}
