package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgekit/hwinvd/pkg/models"
)

func TestTableHandleListKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockKVStore(ctrl)
	handle := NewTableHandle(mockStore, "chassis")

	mockStore.EXPECT().Keys(gomock.Any()).Return([]string{
		"chassis.serial_number",
		"chassis.part_number",
		"psu.serial_number", // another daemon's table, must be invisible
	}, nil)

	keys, err := handle.ListKeys(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		"serial_number": {},
		"part_number":   {},
	}, keys)
}

func TestTableHandleListKeys_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockKVStore(ctrl)
	handle := NewTableHandle(mockStore, "chassis")

	mockStore.EXPECT().Keys(gomock.Any()).Return(nil, nil)

	keys, err := handle.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestTableHandleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockKVStore(ctrl)
	handle := NewTableHandle(mockStore, "chassis")

	mockStore.EXPECT().Delete(gomock.Any(), "chassis.serial_number").Return(nil)

	require.NoError(t, handle.Delete(context.Background(), "serial_number"))
}

func TestTableHandlePutRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockKVStore(ctrl)
	handle := NewTableHandle(mockStore, "chassis")

	mockStore.EXPECT().PutMany(gomock.Any(), []KeyValueEntry{
		{Key: "chassis.serial_number", Value: []byte("SN12345")},
		{Key: "chassis.product_name", Value: []byte("EdgeSwitch 48")},
	}).Return(nil)

	keys, err := handle.PutRecords(context.Background(), []models.Record{
		{Key: models.FieldSerialNumber, Value: "SN12345"},
		{Key: models.FieldProductName, Value: "EdgeSwitch 48"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		"serial_number": {},
		"product_name":  {},
	}, keys)
}
