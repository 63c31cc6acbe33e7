package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	domainservices "github.com/Michal-learning/magazyn/pkg/domain/services"
	"github.com/Michal-learning/magazyn/pkg/infrastructure/repositories/memory"
)

func TestBuildFinalize_NotReentrant(t *testing.T) {
	b := NewBuildService(
		memory.NewMachineRepository(),
		memory.NewLotRepository(),
		memory.NewMachineStockRepository(),
		memory.NewHistoryRepository(),
		domainservices.NewSequence(),
		NopCheckpointer{},
	)
	b.finalizing.Store(true)

	_, err := b.FinalizeFIFO()
	require.Error(t, err, "commit already in flight")
	_, err = b.FinalizeManual(nil)
	require.Error(t, err, "commit already in flight")

	b.finalizing.Store(false)
	_, err = b.FinalizeFIFO()
	require.Error(t, err, "released guard reaches normal validation")
	require.Contains(t, err.Error(), "no build lines staged")
}

func TestDeliveryFinalize_NotReentrant(t *testing.T) {
	d := NewDeliveryService(
		memory.NewPartRepository(),
		memory.NewSupplierRepository(),
		memory.NewLotRepository(),
		memory.NewHistoryRepository(),
		domainservices.NewSequence(),
		NopCheckpointer{},
	)
	d.finalizing.Store(true)

	_, err := d.FinalizeDelivery()
	require.Error(t, err)
	require.Contains(t, err.Error(), "already in progress")
}
