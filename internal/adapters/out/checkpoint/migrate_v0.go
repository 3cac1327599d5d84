package checkpoint

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Version 0 is the triple [deliveries, nfts, escrow] where deliveries and nfts
// are objects keyed by id and each status history entry is a [status, at] pair.

type deliveryV0 struct {
	deliveryV1
	StatusHistory []historyV0 `json:"status_history"`
}

type historyV0 struct {
	Status string
	At     int64
}

func (h *historyV0) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("history entry has %d elements, want 2", len(pair))
	}
	return errors.Join(json.Unmarshal(pair[0], &h.Status), json.Unmarshal(pair[1], &h.At))
}

func migrateV0ToV1(state json.RawMessage) (json.RawMessage, error) {
	var triple []json.RawMessage
	if err := json.Unmarshal(state, &triple); err != nil {
		return nil, err
	}
	if len(triple) != 3 {
		return nil, fmt.Errorf("legacy checkpoint has %d elements, want 3", len(triple))
	}

	var (
		deliveries map[string]deliveryV0
		nfts       map[string]nftV1
		next       stateV1
	)
	if err := errors.Join(
		json.Unmarshal(triple[0], &deliveries),
		json.Unmarshal(triple[1], &nfts),
		json.Unmarshal(triple[2], &next.EscrowBalance),
	); err != nil {
		return nil, err
	}

	next.Deliveries = make([]deliveryV1, 0, len(deliveries))
	for key, legacy := range deliveries {
		if legacy.ID != key {
			return nil, fmt.Errorf("delivery keyed %q has id %q", key, legacy.ID)
		}
		record := legacy.deliveryV1
		record.StatusHistory = make([]historyV1, 0, len(legacy.StatusHistory))
		for _, entry := range legacy.StatusHistory {
			record.StatusHistory = append(record.StatusHistory, historyV1(entry))
		}
		next.Deliveries = append(next.Deliveries, record)
	}
	slices.SortFunc(next.Deliveries, func(a, b deliveryV1) int {
		return cmp.Or(cmp.Compare(a.CreatedAt, b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	next.NFTs = make([]nftV1, 0, len(nfts))
	for key, record := range nfts {
		if record.ID != key {
			return nil, fmt.Errorf("nft keyed %q has id %q", key, record.ID)
		}
		next.NFTs = append(next.NFTs, record)
	}
	slices.SortFunc(next.NFTs, func(a, b nftV1) int {
		return cmp.Or(cmp.Compare(a.MintedAt, b.MintedAt), cmp.Compare(a.ID, b.ID))
	})

	return json.Marshal(next)
}
