package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/huobi/config"
	"github.com/lukehollenback/huobi/exchange"
	"github.com/lukehollenback/huobi/exchange/huobi"
	"github.com/lukehollenback/huobi/report"
)

var (
	cfgPath   = flag.String("config", "", "Path to a YAML configuration file. HUOBI_* environment variables override it.")
	cfgFormat = flag.String("format", "", "Output format (table or csv). Overrides the configured format.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <symbols|currencies|tickers|accounts>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	//
	// Load the configuration.
	//
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration. (Error: %s)", err)
	}

	if *cfgFormat != "" {
		cfg.Format = *cfgFormat
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatalf("Failed to determine the output format. (Error: %s)", err)
	}

	//
	// Build the client. Cancel whatever is in flight if the operating system interrupts us.
	//
	transport := exchange.NewHTTPTransport(&http.Client{
		Timeout:   cfg.Timeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	})
	defer transport.Close()

	client := huobi.NewClient(huobi.Config{
		Host:        cfg.Host,
		Key:         cfg.Key,
		Secret:      cfg.Secret,
		Transport:   transport,
		JournalSize: cfg.JournalSize,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, client, flag.Arg(0), report.New(os.Stdout, format)); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))

		if entry, ok := client.LastRequest(); ok {
			fmt.Fprintf(os.Stderr, "(Request: %s %s %s)\n", entry.ID, entry.Method, entry.Path)
		}

		stop()
		transport.Close()
		os.Exit(1)
	}
}

//
// run executes a single command and renders its result.
//
func run(ctx context.Context, client *huobi.Client, command string, out *report.Writer) error {
	switch command {
	case "symbols":
		symbols, err := client.ListSymbols(ctx)
		if err != nil {
			return err
		}

		return out.Symbols(symbols)

	case "currencies":
		currencies, err := client.ListCurrencies(ctx)
		if err != nil {
			return err
		}

		return out.Currencies(currencies)

	case "tickers":
		tickers, err := client.ListTickers(ctx)
		if err != nil {
			return err
		}

		return out.Tickers(tickers)

	case "accounts":
		accounts, err := client.ListAccounts(ctx)
		if err != nil {
			return err
		}

		return out.Accounts(accounts)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

//
// describe renders a failure for the console, highlighting the exchange's error code if it sent one.
//
func describe(err error) string {
	msg := fmt.Sprintf("%s %s", aurora.Bold(aurora.Red("FAILED")), err)

	if code, ok := huobi.CodeOf(err); ok && !code.Known() {
		msg += fmt.Sprintf(" %s", aurora.Yellow("(unrecognised error code)"))
	}

	return msg
}
