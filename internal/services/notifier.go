package services

import (
	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/notify"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// FarmNotifier publishes domain events after successful mutations.
// Every method is fire-and-forget: implementations must never block
// the caller or surface delivery failures into operation results.
type FarmNotifier interface {
	UserAddedToFarm(userID, farmID uuid.UUID)
	UserRemovedFromFarm(userID, farmID uuid.UUID)
	FieldAdded(farmID uuid.UUID, field *types.FieldInfo)
	FieldUpdated(farmID uuid.UUID, update types.UpdateFieldInput)
	FieldCultivatorChanged(farmID uuid.UUID, update types.UpdateFieldFarmInput)
	FieldStatusChanged(farmID uuid.UUID, update types.UpdateFieldStatusInput)
	FieldCultivationAdded(farmID uuid.UUID, cultivation *types.FieldCultivation)
	FieldHarvested(farmID uuid.UUID, harvest types.HarvestInput)
	FieldCultivationUpdated(farmID uuid.UUID, update types.UpdateCultivationStatusInput)
	FieldCultivationDeleted(farmID, cultivationID uuid.UUID)
}

type farmNotifier struct {
	dispatcher *notify.Dispatcher
}

func NewFarmNotifier(dispatcher *notify.Dispatcher) FarmNotifier {
	return &farmNotifier{dispatcher: dispatcher}
}

func (n *farmNotifier) toUser(userID uuid.UUID, event string, payload any) {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Enqueue(notify.Event{UserID: &userID, Name: event, Payload: payload})
}

func (n *farmNotifier) toGroup(farmID uuid.UUID, event string, payload any) {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Enqueue(notify.Event{GroupID: &farmID, Name: event, Payload: payload})
}

func (n *farmNotifier) UserAddedToFarm(userID, farmID uuid.UUID) {
	n.toUser(userID, "UserAddedToFarm", farmID)
}

func (n *farmNotifier) UserRemovedFromFarm(userID, farmID uuid.UUID) {
	n.toUser(userID, "UserRemovedFromFarm", farmID)
}

func (n *farmNotifier) FieldAdded(farmID uuid.UUID, field *types.FieldInfo) {
	n.toGroup(farmID, "FieldAdded", field)
}

func (n *farmNotifier) FieldUpdated(farmID uuid.UUID, update types.UpdateFieldInput) {
	n.toGroup(farmID, "FieldUpdated", update)
}

func (n *farmNotifier) FieldCultivatorChanged(farmID uuid.UUID, update types.UpdateFieldFarmInput) {
	n.toGroup(farmID, "FieldCultivatorChanged", update)
}

func (n *farmNotifier) FieldStatusChanged(farmID uuid.UUID, update types.UpdateFieldStatusInput) {
	n.toGroup(farmID, "FieldStatusChanged", update)
}

func (n *farmNotifier) FieldCultivationAdded(farmID uuid.UUID, cultivation *types.FieldCultivation) {
	n.toGroup(farmID, "FieldCultivationAdded", cultivation)
}

func (n *farmNotifier) FieldHarvested(farmID uuid.UUID, harvest types.HarvestInput) {
	n.toGroup(farmID, "FieldHarvested", harvest)
}

func (n *farmNotifier) FieldCultivationUpdated(farmID uuid.UUID, update types.UpdateCultivationStatusInput) {
	n.toGroup(farmID, "FieldCultivationUpdated", update)
}

func (n *farmNotifier) FieldCultivationDeleted(farmID, cultivationID uuid.UUID) {
	n.toGroup(farmID, "FieldCultivationDeleted", cultivationID)
}

// NopNotifier drops every event. Useful in tests and tooling.
type NopNotifier struct{}

func (NopNotifier) UserAddedToFarm(userID, farmID uuid.UUID)                                 {}
func (NopNotifier) UserRemovedFromFarm(userID, farmID uuid.UUID)                             {}
func (NopNotifier) FieldAdded(farmID uuid.UUID, field *types.FieldInfo)                      {}
func (NopNotifier) FieldUpdated(farmID uuid.UUID, update types.UpdateFieldInput)             {}
func (NopNotifier) FieldCultivatorChanged(farmID uuid.UUID, update types.UpdateFieldFarmInput) {
}
func (NopNotifier) FieldStatusChanged(farmID uuid.UUID, update types.UpdateFieldStatusInput) {}
func (NopNotifier) FieldCultivationAdded(farmID uuid.UUID, cultivation *types.FieldCultivation) {
}
func (NopNotifier) FieldHarvested(farmID uuid.UUID, harvest types.HarvestInput) {}
func (NopNotifier) FieldCultivationUpdated(farmID uuid.UUID, update types.UpdateCultivationStatusInput) {
}
func (NopNotifier) FieldCultivationDeleted(farmID, cultivationID uuid.UUID) {}
