package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"fincalc/calculator"
	"fincalc/config"
	"fincalc/domain"
	"fincalc/report"
	"fincalc/service"
)

// inputFlag binds a command-line flag to a calculator field.
type inputFlag struct {
	flag  string
	field string
	usage string
}

var jsonFlag = cli.BoolFlag{Name: "json", Usage: "print the result as JSON"}

func simpleInterestCommand() cli.Command {
	return calculatorCommand(domain.ModeSimpleInterest, "simple interest on a principal", []inputFlag{
		{flag: "principal", field: domain.FieldPrincipal, usage: "principal amount"},
		{flag: "rate", field: domain.FieldRate, usage: "annual interest rate in percent"},
		{flag: "time", field: domain.FieldTime, usage: "time period in years"},
	})
}

func compoundInterestCommand() cli.Command {
	return calculatorCommand(domain.ModeCompoundInterest, "compound interest on a principal", []inputFlag{
		{flag: "principal", field: domain.FieldPrincipal, usage: "principal amount"},
		{flag: "rate", field: domain.FieldRate, usage: "annual interest rate in percent"},
		{flag: "time", field: domain.FieldTime, usage: "time period in years"},
		{flag: "frequency", field: domain.FieldCompoundFrequency, usage: "compounding periods per year: 1, 2, 4, 12 (default) or 365"},
	})
}

func gstCommand() cli.Command {
	return calculatorCommand(domain.ModeGST, "GST on a pre-tax amount", []inputFlag{
		{flag: "amount", field: domain.FieldAmount, usage: "pre-tax amount"},
		{flag: "rate", field: domain.FieldGSTRate, usage: "GST rate in percent (default 18)"},
	})
}

var emiFlags = []inputFlag{
	{flag: "loan-amount", field: domain.FieldLoanAmount, usage: "loan amount"},
	{flag: "interest-rate", field: domain.FieldInterestRate, usage: "interest rate in percent per annum"},
	{flag: "tenure", field: domain.FieldTenure, usage: "loan tenure in years"},
}

func emiCommand() cli.Command {
	cmd := calculatorCommand(domain.ModeEMI, "equated monthly installment of a loan", emiFlags)
	cmd.Flags = append(cmd.Flags,
		cli.BoolFlag{Name: "schedule", Usage: "print the month-by-month amortization schedule"},
		cli.StringFlag{Name: "xlsx", Usage: "write the amortization schedule to an .xlsx file"},
	)

	calculate := cmd.Action.(func(*cli.Context) error)
	cmd.Action = func(c *cli.Context) error {
		if !c.Bool("schedule") && c.String("xlsx") == "" {
			return calculate(c)
		}
		return runSchedule(c)
	}
	return cmd
}

func modesCommand() cli.Command {
	return cli.Command{
		Name:  "modes",
		Usage: "list calculators and their fields",
		Flags: []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			modes := calculator.Modes()
			if c.Bool("json") {
				return printJSON(os.Stdout, modes)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, m := range modes {
				fmt.Fprintf(w, "%s\t%s\n", m.Mode, m.Title)
				for _, f := range m.Fields {
					fmt.Fprintf(w, "\t  %s\t%s\t%s\n", f.Name, f.Label, f.Default)
				}
			}
			return w.Flush()
		},
	}
}

func calculatorCommand(mode domain.Mode, usage string, inputs []inputFlag) cli.Command {
	flags := []cli.Flag{jsonFlag}
	for _, in := range inputs {
		flags = append(flags, cli.StringFlag{Name: in.flag, Usage: in.usage})
	}

	return cli.Command{
		Name:  string(mode),
		Usage: usage,
		Flags: flags,
		Action: func(c *cli.Context) error {
			svc, err := newCLIService(c)
			if err != nil {
				return err
			}

			calc, err := svc.Calculate(mode, rawInputs(c, inputs))
			if err != nil {
				return exitError(err)
			}

			if c.Bool("json") {
				return printJSON(os.Stdout, calc)
			}
			return printCalculation(os.Stdout, calc)
		},
	}
}

func runSchedule(c *cli.Context) error {
	svc, err := newCLIService(c)
	if err != nil {
		return err
	}

	schedule, err := svc.Schedule(rawInputs(c, emiFlags))
	if err != nil {
		return exitError(err)
	}

	if path := c.String("xlsx"); path != "" {
		if err := report.WriteScheduleXLSX(path, schedule); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "schedule written to %s\n", path)
	}
	if !c.Bool("schedule") {
		return nil
	}

	if c.Bool("json") {
		return printJSON(os.Stdout, schedule)
	}
	return printSchedule(os.Stdout, schedule)
}

func newCLIService(c *cli.Context) (*service.CalculatorService, error) {
	level := c.GlobalString("log-level")
	if level == "" {
		level = "warn"
	}
	logger, err := config.NewLogger(config.LogConfig{Level: level, Format: "console"})
	if err != nil {
		return nil, err
	}
	return service.NewCalculatorService(logger.With(zap.String("source", "cli"))), nil
}

// rawInputs collects only the flags that were given so field defaults apply.
func rawInputs(c *cli.Context, inputs []inputFlag) domain.RawInputSet {
	raw := domain.RawInputSet{}
	for _, in := range inputs {
		if c.IsSet(in.flag) {
			raw[in.field] = c.String(in.flag)
		}
	}
	return raw
}

func exitError(err error) error {
	var invalid *domain.InvalidNumberError
	if errors.As(err, &invalid) {
		return cli.NewExitError(fmt.Sprintf("%s (%s: %q)", domain.UserMessage, invalid.Field, invalid.Value), 2)
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCalculation(w io.Writer, calc domain.Calculation) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, line := range resultLines(calc.Result) {
		fmt.Fprintf(tw, "%s\t%s\t\n", line.label, service.Money(line.value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, calc.Summary)
	return err
}

type resultLine struct {
	label string
	value float64
}

func resultLines(res domain.Result) []resultLine {
	switch r := res.(type) {
	case domain.SimpleInterestResult:
		return []resultLine{{"Principal:", r.Principal}, {"Simple Interest:", r.Interest}, {"Total Amount:", r.Total}}
	case domain.CompoundInterestResult:
		return []resultLine{{"Principal:", r.Principal}, {"Compound Interest:", r.Interest}, {"Total Amount:", r.Total}}
	case domain.GSTResult:
		return []resultLine{{"Original Amount:", r.OriginalAmount}, {"GST Amount:", r.GSTAmount}, {"Total Amount:", r.TotalAmount}}
	case domain.EMIResult:
		return []resultLine{
			{"Loan Amount:", r.LoanAmount},
			{"Monthly EMI:", r.MonthlyPayment},
			{"Total Payment:", r.TotalPayment},
			{"Total Interest:", r.TotalInterest},
		}
	}
	return nil
}

func printSchedule(w io.Writer, schedule domain.AmortizationSchedule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tPayment\tPrincipal\tInterest\tBalance\t")
	for _, inst := range schedule.Installments {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", inst.Month,
			service.Money(inst.Payment), service.Money(inst.Principal),
			service.Money(inst.Interest), service.Money(inst.RemainingBalance))
	}
	return tw.Flush()
}
