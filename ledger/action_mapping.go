package ledger

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// jsonAPI honors json.Marshaler and json.Unmarshaler, which decimal.Decimal relies on.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// StorableActionFrom converts an Action and its ActionMetadata to a StorableAction.
func StorableActionFrom(
	sequenceNumber uint,
	action core.Action,
	metadata ActionMetadata,
) (StorableAction, error) {

	payloadJSON, err := jsonAPI.Marshal(action)
	if err != nil {
		return StorableAction{}, errors.Join(ErrMappingToStorableActionFailed, err)
	}

	metadataJSON, err := jsonAPI.Marshal(metadata)
	if err != nil {
		return StorableAction{}, errors.Join(ErrMappingToStorableActionFailed, err)
	}

	storableAction, err := BuildStorableAction(
		sequenceNumber,
		action.ActionType(),
		action.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)
	if err != nil {
		return StorableAction{}, errors.Join(ErrMappingToStorableActionFailed, err)
	}

	return storableAction, nil
}

// ActionFrom converts a StorableAction back to the Action it was built from.
func ActionFrom(storableAction StorableAction) (core.Action, error) {
	switch storableAction.ActionType {
	case core.CreateContractActionType:
		return unmarshalAction[core.CreateContract](storableAction.PayloadJSON)

	case core.CancelContractActionType:
		return unmarshalAction[core.CancelContract](storableAction.PayloadJSON)

	case core.RequestCashbackActionType:
		return unmarshalAction[core.RequestCashback](storableAction.PayloadJSON)

	case core.PurchaseProductActionType:
		return unmarshalAction[core.PurchaseProduct](storableAction.PayloadJSON)

	default:
		return nil, errors.Join(ErrMappingToActionFailed, ErrUnknownActionType)
	}
}

// ActionsFrom converts multiple StorableActions to Actions.
func ActionsFrom(storableActions StorableActions) (core.Actions, error) {
	actions := make(core.Actions, 0, len(storableActions))

	for _, storableAction := range storableActions {
		action, err := ActionFrom(storableAction)
		if err != nil {
			return nil, err
		}

		actions = append(actions, action)
	}

	return actions, nil
}

func unmarshalAction[A core.Action](payloadJSON []byte) (core.Action, error) {
	action := new(A)

	if err := jsonAPI.Unmarshal(payloadJSON, action); err != nil {
		return nil, errors.Join(ErrMappingToActionFailed, err)
	}

	return *action, nil
}
