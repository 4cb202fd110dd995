// Package device models memristors, two-terminal resistive cells whose
// resistance moves with every voltage pulse they receive.
//
// A Memristor holds the physical state of one cell: its resistance bounds,
// the material fit coefficients and the current resistance. How a pulse
// moves the resistance is decided by a Law. The package ships the Anouk
// power-law fit in a unidirectional and a bidirectional flavour.
//
// Every pulse is a two step computation. The current resistance is first
// turned into the number of pulses the device would have needed to reach it
// from its pristine state. The next pulse number is then turned back into a
// resistance.
package device
