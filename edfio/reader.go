package edfio

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/OpenPSG/edf"

	"github.com/cwbudde/algo-biosig/measure/rsa"
)

var (
	// ErrNoChannels indicates a recording without any signals.
	ErrNoChannels = errors.New("edfio: recording has no channels")

	// ErrUnknownLength indicates a recording whose header does not state
	// the number of data records.
	ErrUnknownLength = errors.New("edfio: unknown data record count")

	// ErrMixedRates indicates channels with differing sampling rates,
	// which cannot share one frame.
	ErrMixedRates = errors.New("edfio: channels have mixed sampling rates")
)

// Channel is one labeled signal of a recording.
type Channel struct {
	Label      string
	SampleRate float64
	Samples    []float64
}

// ReadChannels decodes every channel of an EDF/EDF+ recording.
func ReadChannels(r io.ReadSeeker) ([]Channel, error) {
	meta, err := parseMetadata(r)
	if err != nil {
		return nil, err
	}

	if len(meta.signals) == 0 {
		return nil, ErrNoChannels
	}

	if meta.records < 0 {
		return nil, ErrUnknownLength
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("edfio: rewinding recording: %w", err)
	}

	reader, err := edf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("edfio: opening recording: %w", err)
	}

	channels := make([]Channel, len(meta.signals))

	for i, sig := range meta.signals {
		sr, err := reader.Signal(i)
		if err != nil {
			return nil, fmt.Errorf("edfio: channel %q: %w", sig.label, err)
		}

		samples := make([]float64, sig.samplesPerRecord*meta.records)
		if _, err := sr.Read(samples); err != nil && err != io.EOF {
			return nil, fmt.Errorf("edfio: channel %q: %w", sig.label, err)
		}

		channels[i] = Channel{
			Label:      sig.label,
			SampleRate: float64(sig.samplesPerRecord) / meta.recordDuration.Seconds(),
			Samples:    samples,
		}
	}

	return channels, nil
}

// ReadFrame assembles the recording's channels into an rsa.Frame keyed by
// channel label. All channels must share one sampling rate, which is
// returned alongside the frame.
func ReadFrame(r io.ReadSeeker) (rsa.Frame, float64, error) {
	channels, err := ReadChannels(r)
	if err != nil {
		return nil, 0, err
	}

	rate := channels[0].SampleRate
	frame := make(rsa.Frame, len(channels))

	for _, ch := range channels {
		if ch.SampleRate != rate {
			return nil, 0, fmt.Errorf("%w: %g Hz vs %g Hz", ErrMixedRates, ch.SampleRate, rate)
		}

		frame[ch.Label] = ch.Samples
	}

	return frame, rate, nil
}

// metadata is the subset of the EDF header the readers need; the edf
// library keeps its parsed header private, so the fixed-layout ASCII fields
// are read here directly.
type metadata struct {
	records        int
	recordDuration time.Duration
	signals        []signalMeta
}

type signalMeta struct {
	label            string
	samplesPerRecord int
}

func parseMetadata(r io.ReadSeeker) (metadata, error) {
	var meta metadata

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return meta, fmt.Errorf("edfio: rewinding recording: %w", err)
	}

	fixed := make([]byte, 256)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return meta, fmt.Errorf("edfio: reading header: %w", err)
	}

	records, err := strconv.Atoi(strings.TrimSpace(string(fixed[236:244])))
	if err != nil {
		return meta, fmt.Errorf("edfio: parsing record count: %w", err)
	}

	meta.records = records

	durSec, err := strconv.ParseFloat(strings.TrimSpace(string(fixed[244:252])), 64)
	if err != nil {
		return meta, fmt.Errorf("edfio: parsing record duration: %w", err)
	}

	meta.recordDuration = time.Duration(durSec * float64(time.Second))

	count, err := strconv.Atoi(strings.TrimSpace(string(fixed[252:256])))
	if err != nil {
		return meta, fmt.Errorf("edfio: parsing signal count: %w", err)
	}

	meta.signals = make([]signalMeta, count)

	labels := make([]byte, 16*count)
	if _, err := io.ReadFull(r, labels); err != nil {
		return meta, fmt.Errorf("edfio: reading signal labels: %w", err)
	}

	for i := range meta.signals {
		meta.signals[i].label = strings.TrimSpace(string(labels[i*16 : (i+1)*16]))
	}

	// Skip transducer (80), dimension (8), physical min/max (8+8) and
	// digital min/max (8+8) plus prefiltering (80) per signal; the edf
	// library applies those during sample conversion.
	if _, err := r.Seek(int64(200*count), io.SeekCurrent); err != nil {
		return meta, fmt.Errorf("edfio: skipping signal headers: %w", err)
	}

	spr := make([]byte, 8*count)
	if _, err := io.ReadFull(r, spr); err != nil {
		return meta, fmt.Errorf("edfio: reading samples per record: %w", err)
	}

	for i := range meta.signals {
		n, err := strconv.Atoi(strings.TrimSpace(string(spr[i*8 : (i+1)*8])))
		if err != nil {
			return meta, fmt.Errorf("edfio: parsing samples per record: %w", err)
		}

		meta.signals[i].samplesPerRecord = n
	}

	return meta, nil
}
