package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/memristor/datarecording"
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/tracing"
)

var pulseCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Apply a pulse train to a device and print its state.",
	RunE:  runPulse,
}

func init() {
	f := pulseCmd.Flags()
	f.Int("count", 10, "number of pulses")
	f.Float64("voltage", device.DefaultVoltage, "pulse voltage")
	f.String("metric", device.Conductance.String(),
		"state to print, conductance or resistance")
	f.Bool("scaled", true, "normalise the state to [0, 1]")
	f.Float64("gain", device.DefaultGain, "state gain")
	f.Int64("seed", 0, "seed of the initial resistance draw")
	f.Bool("bidirectional", false, "use the bidirectional model")
	f.String("record", "", "record the resistance history into this database")
}

func runPulse(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	count, _ := f.GetInt("count")
	voltage, _ := f.GetFloat64("voltage")
	metricName, _ := f.GetString("metric")
	scaled, _ := f.GetBool("scaled")
	gain, _ := f.GetFloat64("gain")
	seed, _ := f.GetInt64("seed")
	bidirectional, _ := f.GetBool("bidirectional")
	record, _ := f.GetString("record")

	metric, err := device.ParseMetric(metricName)
	if err != nil {
		return err
	}

	b := device.MakeBuilder().WithSeed(seed)
	if bidirectional {
		b = b.WithBidirectional()
	}

	d := b.Build("Memristor")
	d.SaveState()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "pulse,resistance,state")
	fmt.Fprintf(out, "0,%g,%g\n", d.Resistance(), d.State(metric, scaled, gain))

	for i := 1; i <= count; i++ {
		r, err := d.Pulse(voltage)
		if err != nil {
			return fmt.Errorf("pulse %d: %w", i, err)
		}

		d.SaveState()
		fmt.Fprintf(out, "%d,%g,%g\n", i, r, d.State(metric, scaled, gain))
	}

	if path := recordPath(record); path != "" {
		recorder := datarecording.New(path)
		tracing.RecordHistory(recorder, []device.Device{d})
		recorder.Flush()
	}

	return nil
}
