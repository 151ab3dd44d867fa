package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"metargb/datepicker-service/pkg/helpers"
)

var convertCmd = &cobra.Command{
	Use:   "convert <date>",
	Short: "Convert a date between Jalali and Gregorian",
	Long: `Convert parses its argument as a Jalali date (y/m/d or y-m-d,
Latin or Persian digits) or as a Gregorian date (yyyy/MM/dd, yyyy-MM-dd,
MM/dd/yyyy or dd/MM/yyyy, with an optional time of day) and prints the
date in both calendars.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	resp := newService().Parse(args[0])
	if !resp.Valid {
		return fmt.Errorf("unrecognized date: %q", args[0])
	}

	info := resp.Date
	if farsi {
		fmt.Printf("شمسی: %s (%s %s)\n", helpers.PersianDigits(info.JalaliText), info.WeekdayNameFa, info.JalaliLongFa)
		fmt.Printf("میلادی: %s\n", info.GregorianISO)
		return nil
	}

	fmt.Printf("Jalali:    %s (%s, %s)\n", info.JalaliText, info.WeekdayName, info.JalaliLong)
	fmt.Printf("Gregorian: %s\n", info.GregorianISO)
	return nil
}
