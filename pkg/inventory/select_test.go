package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/hwinvd/pkg/logger"
	"github.com/edgekit/hwinvd/pkg/models"
)

// captureWriter records what a source publishes, in place of a live table.
type captureWriter struct {
	records []models.Record
}

func (c *captureWriter) PutRecords(_ context.Context, records []models.Record) (map[string]struct{}, error) {
	c.records = append(c.records, records...)

	keys := make(map[string]struct{}, len(records))
	for _, rec := range records {
		keys[rec.Key] = struct{}{}
	}

	return keys, nil
}

func writeEEPROMFixture(t *testing.T) string {
	t.Helper()

	blob := buildTLVBlob(t,
		tlv(tlvCodeSerialNumber, []byte("SN777")),
		tlv(tlvCodeProductName, []byte("EdgeSwitch 48")),
	)

	path := filepath.Join(t.TempDir(), "eeprom")
	require.NoError(t, os.WriteFile(path, blob, 0o600))

	return path
}

func TestSelect_FirstProviderWins(t *testing.T) {
	cfg := &Config{
		Providers:  []string{"eeprom", "host"},
		EEPROMPath: writeEEPROMFixture(t),
	}

	source, err := Select(cfg, logger.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, "eeprom", source.Name())
}

func TestSelect_FallsThroughOnCapabilityMiss(t *testing.T) {
	cfg := &Config{
		Providers:  []string{"eeprom", "dmi", "host"},
		EEPROMPath: filepath.Join(t.TempDir(), "missing"),
		DMIPath:    filepath.Join(t.TempDir(), "also-missing"),
	}

	source, err := Select(cfg, logger.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, "host", source.Name())
}

func TestSelect_AllProvidersFail(t *testing.T) {
	cfg := &Config{
		Providers:  []string{"eeprom"},
		EEPROMPath: filepath.Join(t.TempDir(), "missing"),
	}

	_, err := Select(cfg, logger.NewTestLogger())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestSelect_UnknownProvider(t *testing.T) {
	cfg := &Config{Providers: []string{"tarot"}}

	_, err := Select(cfg, logger.NewTestLogger())
	assert.ErrorIs(t, err, errUnknownProvider)
}

func TestEEPROMSourceRoundTrip(t *testing.T) {
	cfg := &Config{EEPROMPath: writeEEPROMFixture(t)}

	source, err := NewEEPROMSource(cfg, logger.NewTestLogger())
	require.NoError(t, err)

	ctx := context.Background()

	raw, err := source.Read(ctx)
	require.NoError(t, err)

	w := &captureWriter{}

	keys, err := source.DecodeAndPublish(ctx, raw, w)
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		models.FieldSerialNumber: {},
		models.FieldProductName:  {},
	}, keys)
	assert.Len(t, w.records, 2)
}

func TestEEPROMSource_DecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom")
	require.NoError(t, os.WriteFile(path, []byte("not a tlv blob at all"), 0o600))

	source, err := NewEEPROMSource(&Config{EEPROMPath: path}, logger.NewTestLogger())
	require.NoError(t, err)

	ctx := context.Background()

	raw, err := source.Read(ctx)
	require.NoError(t, err)

	_, err = source.DecodeAndPublish(ctx, raw, &captureWriter{})
	assert.ErrorIs(t, err, ErrDecodeFailure)
}

func TestDMISourceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product_serial"), []byte("SN9000\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product_name"), []byte("Edge Appliance\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sys_vendor"), []byte("Edgekit\n"), 0o600))

	source, err := NewDMISource(&Config{DMIPath: dir}, logger.NewTestLogger())
	require.NoError(t, err)

	ctx := context.Background()

	raw, err := source.Read(ctx)
	require.NoError(t, err)

	w := &captureWriter{}

	keys, err := source.DecodeAndPublish(ctx, raw, w)
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		models.FieldSerialNumber: {},
		models.FieldProductName:  {},
		models.FieldVendor:       {},
	}, keys)
}

func TestDMISource_EmptyDirReadFails(t *testing.T) {
	source, err := NewDMISource(&Config{DMIPath: t.TempDir()}, logger.NewTestLogger())
	require.NoError(t, err)

	_, err = source.Read(context.Background())
	assert.ErrorIs(t, err, ErrReadFailure)
}

func TestConfigValidate_Defaults(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"eeprom", "dmi", "host"}, cfg.Providers)
	assert.Equal(t, defaultEEPROMPath, cfg.EEPROMPath)
	assert.Equal(t, defaultDMIPath, cfg.DMIPath)
}

func TestConfigValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Providers: []string{"ouija"}}

	assert.ErrorIs(t, cfg.Validate(), errUnknownProvider)
}
