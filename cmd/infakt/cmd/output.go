package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/reoring/infakt/model"
	"github.com/reoring/infakt/schema"
)

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func str[T ~string](p *T) string {
	if p == nil {
		return "-"
	}
	return string(*p)
}

func num(p *int64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}

func clientName(inv model.Invoice) string {
	if inv.ClientCompanyName != nil && *inv.ClientCompanyName != "" {
		return *inv.ClientCompanyName
	}
	if inv.ClientFirstName == nil && inv.ClientLastName == nil {
		return "-"
	}
	return strings.TrimSpace(str(inv.ClientFirstName) + " " + str(inv.ClientLastName))
}

func writeInvoiceTable(w io.Writer, res *model.InvoicesResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tSTATUS\tDATE\tCLIENT\tGROSS\tLEFT\tCURRENCY")
	fmt.Fprintln(tw, "--\t------\t------\t----\t------\t-----\t----\t--------")
	for _, inv := range res.Entities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			num(inv.ID), str(inv.Number), str(inv.Status), str(inv.InvoiceDate),
			clientName(inv), model.Format(inv.GrossPrice), model.Format(inv.LeftToPay), str(inv.Currency))
	}
	fmt.Fprintf(tw, "\n%d of %d invoice(s)\n", res.MetaInfo.Count, res.MetaInfo.TotalCount)
	return tw.Flush()
}

func writeInvoiceDetail(w io.Writer, inv *model.Invoice) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", num(inv.ID)},
		{"Number", str(inv.Number)},
		{"Status", str(inv.Status)},
		{"Kind", str(inv.Kind)},
		{"Invoice date", str(inv.InvoiceDate)},
		{"Payment date", str(inv.PaymentDate)},
		{"Client", clientName(*inv)},
		{"Net", model.Format(inv.NetPrice)},
		{"Tax", model.Format(inv.TaxPrice)},
		{"Gross", model.Format(inv.GrossPrice)},
		{"Left to pay", model.Format(inv.LeftToPay)},
		{"Currency", str(inv.Currency)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	if len(inv.Services) > 0 {
		fmt.Fprintln(tw, "\nNAME\tQTY\tUNIT NET\tNET\tGROSS")
		for _, s := range inv.Services {
			qty := "-"
			if s.Quantity != nil {
				qty = fmt.Sprint(*s.Quantity)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Name, qty,
				model.Format(s.UnitNetPrice), model.Format(s.NetPrice), model.Format(s.GrossPrice))
		}
	}
	return tw.Flush()
}

func writeIssues(w io.Writer, iss schema.Issues) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tCODE\tMESSAGE")
	for _, it := range iss {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
	return tw.Flush()
}
