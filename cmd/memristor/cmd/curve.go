package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/memristor/characterize"
	"github.com/sarchlab/memristor/datarecording"
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/monitoring"
	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/sim/timing"
	"github.com/sarchlab/memristor/tracing"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sweep the resistance curve of a device.",
	Long: "`curve` starts a device at one of its resistance bounds and " +
		"pulses it until it comes within a threshold of the other bound. " +
		"Every point is printed as CSV.",
	RunE: runCurve,
}

func init() {
	f := curveCmd.Flags()
	f.Float64("voltage", characterize.DefaultVoltage, "pulse voltage")
	f.Float64("threshold", characterize.DefaultThreshold,
		"stop this many ohms away from the final bound")
	f.Int("max-pulses", characterize.DefaultMaxPulses,
		"stop after this many pulses, 0 for no limit")
	f.Bool("bidirectional", false, "use the bidirectional model")
	f.Int64("seed", 0, "seed of the initial resistance draw")
	f.String("record", "", "record pulses and the curve into this database")
	f.Bool("monitor", false, "serve the monitoring API while sweeping")
	f.Bool("browser", false, "open the monitor in a browser")
	f.Bool("log", false, "log every pulse to stderr")
	f.Bool("log-events", false, "log every engine event to stderr")
}

func runCurve(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	voltage, _ := f.GetFloat64("voltage")
	threshold, _ := f.GetFloat64("threshold")
	maxPulses, _ := f.GetInt("max-pulses")
	bidirectional, _ := f.GetBool("bidirectional")
	seed, _ := f.GetInt64("seed")
	record, _ := f.GetString("record")
	monitor, _ := f.GetBool("monitor")
	openBrowser, _ := f.GetBool("browser")
	logPulses, _ := f.GetBool("log")
	logEvents, _ := f.GetBool("log-events")

	engine := timing.NewSerialEngine()

	db := device.MakeBuilder().WithSeed(seed)
	if bidirectional {
		db = db.WithBidirectional()
	}

	d := db.Build("Memristor")

	sweeper := characterize.MakeBuilder().
		WithEngine(engine).
		WithVoltage(voltage).
		WithThreshold(threshold).
		WithMaxPulses(maxPulses).
		Build("Sweeper", d)

	counter := hooking.NewPosCounter()
	d.AcceptHook(counter)

	if logEvents {
		engine.AcceptHook(timing.NewEventLogger(log.New(os.Stderr, "", 0)))
	}

	if logPulses {
		d.AcceptHook(tracing.NewPulseLogger(log.New(os.Stderr, "", 0), engine))
	}

	var recorder datarecording.DataRecorder
	if path := recordPath(record); path != "" {
		recorder = datarecording.New(path)
		d.AcceptHook(tracing.NewPulseTracer(recorder, engine))
	}

	if monitor {
		port, err := monitorPort()
		if err != nil {
			return err
		}

		m := monitoring.NewMonitor().WithPortNumber(port)
		if openBrowser {
			m = m.WithBrowser()
		}

		m.RegisterEngine(engine)
		m.RegisterComponent(sweeper)
		m.RegisterComponent(d)
		m.TrackProgress(sweeper, "Sweep", characterize.HookPosSweepPoint,
			uint64(maxPulses))
		m.StartServer()
	}

	sweeper.Start()

	err := engine.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "pulse,resistance")

	for _, p := range sweeper.Points() {
		fmt.Fprintf(out, "%d,%g\n", p.Pulse, p.Resistance)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Sweep stopped (%s) after %d pulses\n",
		sweeper.Reason(), counter.Count(device.HookPosAfterPulse))

	if recorder != nil {
		tracing.RecordCurve(recorder, sweeper.Name(), sweeper.Points())
		recorder.Flush()
	}

	return nil
}
