package edfio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/OpenPSG/edf"
)

var (
	// ErrEmptyChannel indicates a channel without samples.
	ErrEmptyChannel = errors.New("edfio: channel has no samples")

	// ErrInvalidDuration indicates a non-positive data record duration.
	ErrInvalidDuration = errors.New("edfio: record duration must be positive")
)

// 16-bit digital range of EDF samples.
const (
	digitalMin = -32768
	digitalMax = 32767
)

// EDF stores signal labels in a fixed 16-byte header field.
const maxLabelLen = 16

// WriteChannels stores the channels as an EDF recording with the given data
// record duration. Each channel's samples-per-record follows from its
// sampling rate; trailing records are padded with the channel's last sample
// so every channel spans the same record count. Labels longer than 16 bytes
// are truncated to fit the header field.
func WriteChannels(w io.WriteSeeker, channels []Channel, recordDuration time.Duration) error {
	if len(channels) == 0 {
		return ErrNoChannels
	}

	if recordDuration <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, recordDuration)
	}

	signals := make([]edf.Signal, len(channels))
	perRecord := make([]int, len(channels))
	records := 0

	for i, ch := range channels {
		if len(ch.Samples) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyChannel, ch.Label)
		}

		spr := int(math.Round(ch.SampleRate * recordDuration.Seconds()))
		if spr < 1 {
			spr = 1
		}

		perRecord[i] = spr

		if n := (len(ch.Samples) + spr - 1) / spr; n > records {
			records = n
		}

		lo, hi := sampleRange(ch.Samples)

		label := ch.Label
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}

		signals[i] = edf.Signal{
			Label:             label,
			PhysicalDimension: "au",
			PhysicalMin:       lo,
			PhysicalMax:       hi,
			DigitalMin:        digitalMin,
			DigitalMax:        digitalMax,
			SamplesPerRecord:  spr,
		}
	}

	writer, err := edf.Create(w, edf.Header{
		Version:            edf.Version0,
		StartTime:          time.Now().UTC(),
		DataRecordDuration: recordDuration,
		SignalCount:        len(channels),
		Signals:            signals,
	})
	if err != nil {
		return fmt.Errorf("edfio: creating recording: %w", err)
	}

	for rec := 0; rec < records; rec++ {
		record := make([][]float64, len(channels))

		for i, ch := range channels {
			chunk := make([]float64, perRecord[i])

			for j := range chunk {
				idx := rec*perRecord[i] + j
				if idx >= len(ch.Samples) {
					idx = len(ch.Samples) - 1
				}

				chunk[j] = ch.Samples[idx]
			}

			record[i] = chunk
		}

		if err := writer.WriteRecord(record); err != nil {
			return fmt.Errorf("edfio: writing record %d: %w", rec, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("edfio: finalizing recording: %w", err)
	}

	return nil
}

// sampleRange returns the physical calibration range of the samples. The
// extremes are rounded outward to 2 decimals because the header stores
// physical min/max at that precision and the reader decodes against the
// stored values. A constant channel is widened so the digital mapping stays
// well defined.
func sampleRange(samples []float64) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)

	for _, v := range samples {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	lo = math.Floor(lo*100) / 100
	hi = math.Ceil(hi*100) / 100

	if lo == hi {
		lo--
		hi++
	}

	return lo, hi
}
