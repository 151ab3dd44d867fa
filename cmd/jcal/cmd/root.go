package cmd

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"metargb/datepicker-service/internal/config"
	"metargb/datepicker-service/internal/converter"
	"metargb/datepicker-service/internal/service"
	"metargb/datepicker-service/pkg/logger"
	"metargb/datepicker-service/pkg/metrics"
)

var farsi bool

var rootCmd = &cobra.Command{
	Use:   "jcal",
	Short: "Jalali calendar from the terminal",
	Long: `jcal converts between Jalali and Gregorian dates and renders
Saturday-first month grids, using the same engine as the datepicker
service.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&farsi, "farsi", false, "print Persian digits where possible")
}

// newService builds a picker service for one-shot CLI use. Metrics go
// to a throwaway registry; only the engine matters here.
func newService() *service.DatePickerService {
	cfg := config.LoadConfig()

	log := logger.NewLogger("jcal")
	m := metrics.NewMetricsWithRegistry("jcal", prometheus.NewRegistry())
	conv := converter.New(log, m)

	location, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		location = time.UTC
	}
	return service.NewDatePickerService(conv, location)
}
