package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"metargb/datepicker-service/internal/models"
	"metargb/datepicker-service/pkg/helpers"
)

var monthCmd = &cobra.Command{
	Use:   "month [year month]",
	Short: "Render a Jalali month grid",
	Long: `Month prints the Saturday-first grid of a Jalali month, with
today bracketed. Without arguments it renders the current month.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	svc := newService()

	var year, month int
	switch len(args) {
	case 0:
		today := svc.Today()
		year, month = today.Jalali.Year, today.Jalali.Month
	case 2:
		y, err := helpers.ParseInt(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		m, err := helpers.ParseInt(args[1])
		if err != nil {
			return fmt.Errorf("invalid month %q", args[1])
		}
		year, month = int(y), int(m)
	default:
		return fmt.Errorf("month takes no arguments or a year and a month")
	}

	grid, err := svc.MonthGrid(year, month)
	if err != nil {
		return err
	}

	printGrid(grid)
	return nil
}

const cellWidth = 4

func printGrid(grid *models.MonthGrid) {
	title := fmt.Sprintf("%s %d", grid.MonthName, grid.Year)
	if farsi {
		title = fmt.Sprintf("%s %s", grid.MonthNameFa, helpers.PersianDigits(strconv.Itoa(grid.Year)))
	}

	pad := (7*cellWidth - utf8.RuneCountInString(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Println(strings.Repeat(" ", pad) + title)

	headers := []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}
	if farsi {
		headers = []string{"ش", "ی", "د", "س", "چ", "پ", "ج"}
	}
	for _, h := range headers {
		fmt.Printf("%*s", cellWidth, h)
	}
	fmt.Println()

	for _, week := range grid.Weeks {
		for _, day := range week {
			fmt.Print(formatCell(day, grid.Today))
		}
		fmt.Println()
	}
}

func formatCell(day, today int) string {
	if day == 0 {
		return strings.Repeat(" ", cellWidth)
	}

	cell := strconv.Itoa(day)
	if farsi {
		cell = helpers.PersianDigits(cell)
	}
	if day == today {
		cell = "[" + cell + "]"
	}
	return fmt.Sprintf("%*s", cellWidth, cell)
}
