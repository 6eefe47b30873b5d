package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lukehollenback/huobi/exchange/huobi"
)

//
// Writer renders records of the Huobi client as rows, one record per row, preceded by a header row.
//
type Writer struct {
	out    io.Writer
	format Format
}

func New(out io.Writer, format Format) *Writer {
	return &Writer{
		out:    out,
		format: format,
	}
}

func (o *Writer) Symbols(symbols []huobi.Symbol) error {
	rows := make([][]string, len(symbols))

	for i, v := range symbols {
		rows[i] = []string{
			v.Symbol,
			v.BaseCurrency,
			v.QuoteCurrency,
			strconv.FormatInt(v.PricePrecision, 10),
			strconv.FormatInt(v.AmountPrecision, 10),
			v.SymbolPartition,
		}
	}

	return o.write([]string{"Symbol", "BaseCurrency", "QuoteCurrency", "PricePrecision", "AmountPrecision", "SymbolPartition"}, rows)
}

func (o *Writer) Currencies(currencies []huobi.Currency) error {
	rows := make([][]string, len(currencies))

	for i, v := range currencies {
		rows[i] = []string{v.QuoteCurrency}
	}

	return o.write([]string{"QuoteCurrency"}, rows)
}

func (o *Writer) Tickers(tickers []huobi.Ticker) error {
	rows := make([][]string, len(tickers))

	for i, v := range tickers {
		rows[i] = []string{
			v.Symbol,
			v.Open.String(),
			v.High.String(),
			v.Low.String(),
			v.Close.String(),
			v.Amount.String(),
			v.Vol.String(),
			v.Count.String(),
			strconv.FormatInt(v.TS, 10),
		}
	}

	return o.write([]string{"Symbol", "Open", "High", "Low", "Close", "Amount", "Vol", "Count", "Timestamp"}, rows)
}

func (o *Writer) Accounts(accounts []huobi.Account) error {
	rows := make([][]string, len(accounts))

	for i, v := range accounts {
		rows[i] = []string{
			strconv.FormatInt(v.ID, 10),
			strconv.FormatInt(v.UserID, 10),
			v.Type,
			v.State,
		}
	}

	return o.write([]string{"ID", "UserID", "Type", "State"}, rows)
}

func (o *Writer) write(header []string, rows [][]string) error {
	if o.format == CSV {
		w := csv.NewWriter(o.out)

		if err := w.Write(header); err != nil {
			return err
		}

		if err := w.WriteAll(rows); err != nil {
			return err
		}

		return w.Error()
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)

	if _, err := io.WriteString(w, strings.Join(header, "\t")+"\n"); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := io.WriteString(w, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}

	return w.Flush()
}
