package geoip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEventLocation(t *testing.T) {
	lat, lon := 19.076, 72.8777

	var record cityRecord
	record.City.Names = map[string]string{"en": "Mumbai", "hi": "मुंबई"}
	record.Country.Names = map[string]string{"en": "India"}
	record.Subdivisions = []namedPlace{{Names: map[string]string{"en": "Maharashtra"}}}
	record.Location.Latitude = &lat
	record.Location.Longitude = &lon

	loc := toEventLocation(&record)
	require.NotNil(t, loc)
	assert.Equal(t, "Mumbai", loc.City)
	assert.Equal(t, "Maharashtra", loc.State)
	assert.Equal(t, "India", loc.Country)
	assert.InDelta(t, lat, *loc.Latitude, 1e-9)
}

func TestToEventLocation_EmptyRecord(t *testing.T) {
	assert.Nil(t, toEventLocation(&cityRecord{}))
}

func TestMaxmindLocator_SkipsLocalAddresses(t *testing.T) {
	locator := &maxmindLocator{}

	for _, ip := range []string{"", "not-an-ip", "127.0.0.1", "10.1.2.3", "192.168.0.10"} {
		loc, err := locator.Locate(ip)
		assert.NoError(t, err, ip)
		assert.Nil(t, loc, ip)
	}
}

func TestUnknownLocator(t *testing.T) {
	loc, err := unknownLocator{}.Locate("8.8.8.8")
	assert.NoError(t, err)
	assert.Nil(t, loc)
}
