package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"metargb/datepicker-service/pkg/helpers"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today in both calendars",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	today := newService().Today()

	if farsi {
		fmt.Printf("%s %s (%s)\n", today.WeekdayNameFa, today.JalaliLongFa, helpers.PersianDigits(today.JalaliText))
		fmt.Printf("میلادی: %s\n", today.GregorianISO)
		return nil
	}

	fmt.Printf("%s, %s (%s)\n", today.WeekdayName, today.JalaliLong, today.JalaliText)
	fmt.Printf("Gregorian: %s\n", today.GregorianISO)
	return nil
}
