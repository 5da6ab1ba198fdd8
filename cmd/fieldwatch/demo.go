package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldwatch-dev/fieldwatch/pkg/observe"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the observable-values walkthrough on the console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	reg := observe.NewRegistry()
	vals := newSampleValues(reg)

	// Broadcast the whole universe: these are the default values.
	info("broadcast initial values")
	reg.NotifyAll()

	// Mutate fields as if they were plain variables; each write prints
	// through the console listener.
	info("update some values")
	vals.I1.Set(42)
	vals.D1.Set(6.555)
	vals.F1.Set(0.33)
	vals.I2.Set(-56)
	vals.E2.Set(1)

	vals.A2.SetAt(1, 6)

	vals.S1.D1.Set(5.5)
	vals.S1.AF1.SetAt(0, 3.3)

	// Reads are silent.
	i := vals.I1.Get()
	d := vals.S1.D1.Get()
	f, err := vals.S1.AF1.At(0)
	if err != nil {
		return err
	}
	info("read back i1=%d s1.d1=%v s1.af1[0]=%v (no notifications)", i, d, f)

	// Values compare like the plain types they wrap.
	if vals.I1.Get() == 42 {
		success("comparison works")
	}

	info("again send all updates")
	reg.NotifyAll()

	// Drive values externally through the string protocol.
	for _, u := range []struct{ path, value string }{
		{"i1", "45"},
		{"s1.d1", "7.25"},
		{"a2", "9,8,7,6"},
	} {
		found, err := reg.UpdateByPath(u.path, u.value)
		if err != nil {
			return fmt.Errorf("update %s: %w", u.path, err)
		}
		if !found {
			return fmt.Errorf("update %s: %w", u.path, observe.ErrPathNotFound)
		}
		success("applied %q to %s", u.value, u.path)
	}

	info("final state")
	reg.NotifyAll()
	return nil
}
