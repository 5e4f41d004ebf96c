package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/parquet-go/parquet-go"

	"github.com/nycdash/taxi-dashboard-go/internal/models"
)

// requiredTripColumns are the parquet columns the cleaning pipeline
// depends on. A readable file missing any of them is a schema
// mismatch, not an availability failure.
var requiredTripColumns = []string{
	"tpep_pickup_datetime",
	"tpep_dropoff_datetime",
	"PULocationID",
	"DOLocationID",
	"fare_amount",
	"trip_distance",
	"total_amount",
	"payment_type",
}

// Loader reads the trip parquet file and the zone lookup CSV. A Loader
// is load-once: the first Load does the work, every later call returns
// the cached tables. Invalidation only happens by process restart.
type Loader struct {
	tripPath string
	zonePath string

	once  sync.Once
	trips []models.RawTrip
	zones []models.Zone
	err   error
}

// NewLoader creates a loader for the two source files.
func NewLoader(tripPath, zonePath string) *Loader {
	return &Loader{tripPath: tripPath, zonePath: zonePath}
}

// Load returns the raw trip table and the zone lookup. Errors wrap
// models.ErrDataUnavailable when a source cannot be read and
// models.ErrSchemaMismatch when a required column is absent; both are
// terminal for the session.
func (l *Loader) Load() ([]models.RawTrip, []models.Zone, error) {
	l.once.Do(func() {
		l.trips, l.err = readTrips(l.tripPath)
		if l.err != nil {
			return
		}
		l.zones, l.err = readZones(l.zonePath)
		if l.err != nil {
			return
		}
		log.Printf("Loaded %d raw trips and %d zones", len(l.trips), len(l.zones))
	})
	return l.trips, l.zones, l.err
}

func readTrips(path string) ([]models.RawTrip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: trip data %s: %v", models.ErrDataUnavailable, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: trip data %s: %v", models.ErrDataUnavailable, path, err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: trip data %s is not readable parquet: %v", models.ErrDataUnavailable, path, err)
	}

	have := make(map[string]bool)
	for _, field := range pf.Schema().Fields() {
		have[field.Name()] = true
	}
	for _, col := range requiredTripColumns {
		if !have[col] {
			return nil, fmt.Errorf("%w: trip data missing column %q", models.ErrSchemaMismatch, col)
		}
	}

	trips, err := parquet.Read[models.RawTrip](f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: decoding trip data: %v", models.ErrDataUnavailable, err)
	}
	return trips, nil
}

func readZones(path string) ([]models.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: zone lookup %s: %v", models.ErrDataUnavailable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: zone lookup %s: %v", models.ErrDataUnavailable, path, err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	locIdx, ok := idx["LocationID"]
	if !ok {
		return nil, fmt.Errorf("%w: zone lookup missing column %q", models.ErrSchemaMismatch, "LocationID")
	}
	zoneIdx, ok := idx["Zone"]
	if !ok {
		return nil, fmt.Errorf("%w: zone lookup missing column %q", models.ErrSchemaMismatch, "Zone")
	}
	boroughIdx := columnOrNone(idx, "Borough")
	serviceIdx := columnOrNone(idx, "service_zone")

	var zones []models.Zone
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: zone lookup %s: %v", models.ErrDataUnavailable, path, err)
		}

		id, err := strconv.Atoi(record[locIdx])
		if err != nil {
			// Malformed id rows cannot be joined; skip them.
			continue
		}
		z := models.Zone{LocationID: id, Name: record[zoneIdx]}
		if boroughIdx >= 0 {
			z.Borough = record[boroughIdx]
		}
		if serviceIdx >= 0 {
			z.ServiceZone = record[serviceIdx]
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func columnOrNone(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}
