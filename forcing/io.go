package forcing

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/maseology/mmio"
)

func (frc *Forcing) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" forcing.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(frc); err != nil {
		return fmt.Errorf(" forcing.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobForcing(fp string) (*Forcing, error) {
	var frc Forcing
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&frc); err != nil {
		return nil, err
	}
	f.Close()
	return &frc, nil
}

// FromCsv reads "date,inflow,evap,demand" rows (ISO dates). A leading
// header row is tolerated; any later unparsable row is an error.
func FromCsv(fp string) (*Forcing, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("forcing.FromCsv: %v", err)
	}
	defer f.Close()

	var frc Forcing
	first := true
	for rec := range mmio.LoadCSV(io.Reader(f), 0) {
		if len(rec) < 4 {
			return nil, fmt.Errorf("forcing.FromCsv: %s: need 4 fields, got %d", fp, len(rec))
		}
		dt, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			if first {
				first = false
				continue
			}
			return nil, fmt.Errorf("forcing.FromCsv: %s: %v", fp, err)
		}
		first = false
		v := make([]float64, 3)
		for i := 0; i < 3; i++ {
			if v[i], err = strconv.ParseFloat(rec[i+1], 64); err != nil {
				return nil, fmt.Errorf("forcing.FromCsv: %s: %v", fp, err)
			}
		}
		frc.T = append(frc.T, dt)
		frc.Inflow = append(frc.Inflow, v[0])
		frc.Evap = append(frc.Evap, v[1])
		frc.Demand = append(frc.Demand, v[2])
	}
	if err := frc.Check(); err != nil {
		return nil, err
	}
	return &frc, nil
}
