package storage

import (
	"encoding/json"

	"evosim/internal/model"
)

func EncodeRun(r model.RunRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRun(data []byte) (model.RunRecord, error) {
	var run model.RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return model.RunRecord{}, err
	}
	return run, nil
}

func EncodeSnapshots(s []model.GenerationSnapshot) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSnapshots(data []byte) ([]model.GenerationSnapshot, error) {
	var snapshots []model.GenerationSnapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func EncodeScoredGenome(g model.ScoredGenome) ([]byte, error) {
	return json.Marshal(g)
}

func DecodeScoredGenome(data []byte) (model.ScoredGenome, error) {
	var scored model.ScoredGenome
	if err := json.Unmarshal(data, &scored); err != nil {
		return model.ScoredGenome{}, err
	}
	return scored, nil
}
