// Package geoip maps client IPs to a city using a MaxMind GeoLite2 City database.
package geoip

import (
	"log/slog"
	"net"

	"adreach/config"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"github.com/oschwald/maxminddb-golang"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type namedPlace struct {
	Names map[string]string `maxminddb:"names"`
}

// cityRecord is the subset of the GeoLite2 City schema events need.
type cityRecord struct {
	City         namedPlace   `maxminddb:"city"`
	Subdivisions []namedPlace `maxminddb:"subdivisions"`
	Country      namedPlace   `maxminddb:"country"`
	Location     struct {
		Latitude  *float64 `maxminddb:"latitude"`
		Longitude *float64 `maxminddb:"longitude"`
	} `maxminddb:"location"`
}

// Params holds dependencies for the IPLocator, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewIPLocator opens the configured database. Without one, every lookup is unknown.
func NewIPLocator(params Params) (service.IPLocator, error) {
	cfg := params.Config.GeoIP
	if cfg == nil || cfg.DatabasePath == "" {
		params.Logger.Info("GeoIP database not configured, events without location stay unlocated")

		return unknownLocator{}, nil
	}

	reader, err := maxminddb.Open(cfg.DatabasePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open GeoIP database")
	}
	params.Lc.Append(fx.StopHook(reader.Close))

	return &maxmindLocator{reader: reader}, nil
}

type maxmindLocator struct {
	reader *maxminddb.Reader
}

// Locate returns nil for unparsable, private or unknown addresses.
func (l *maxmindLocator) Locate(ip string) (*entity.EventLocation, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() {
		return nil, nil
	}

	var record cityRecord
	if err := l.reader.Lookup(parsed, &record); err != nil {
		return nil, errors.Wrap(err, "geoip lookup")
	}

	return toEventLocation(&record), nil
}

func toEventLocation(record *cityRecord) *entity.EventLocation {
	loc := &entity.EventLocation{
		City:      record.City.Names["en"],
		Country:   record.Country.Names["en"],
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
	}
	if len(record.Subdivisions) > 0 {
		loc.State = record.Subdivisions[0].Names["en"]
	}
	if loc.City == "" && loc.Country == "" && loc.Latitude == nil {
		return nil
	}

	return loc
}

type unknownLocator struct{}

func (unknownLocator) Locate(string) (*entity.EventLocation, error) {
	return nil, nil
}
