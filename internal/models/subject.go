package models

import "encoding/json"

type Subject struct {
	ID         string
	Name       string
	Progress   int
	TasksTotal int
	TasksDone  int

	// Extra holds stored keys this version does not model, written back unchanged.
	Extra map[string]json.RawMessage
}

type subjectRecord struct {
	ID         string `json:"id"`
	Name       string `json:"nombre"`
	Progress   int    `json:"progreso"`
	TasksTotal int    `json:"tareasTotales"`
	TasksDone  int    `json:"tareasHechas"`
}

var subjectRecordKeys = []string{"id", "nombre", "progreso", "tareasTotales", "tareasHechas"}

func (subject Subject) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(subjectRecord{
		ID:         subject.ID,
		Name:       subject.Name,
		Progress:   subject.Progress,
		TasksTotal: subject.TasksTotal,
		TasksDone:  subject.TasksDone,
	})
	if err != nil || len(subject.Extra) == 0 {
		return known, err
	}

	merged := make(map[string]json.RawMessage, len(subject.Extra)+len(subjectRecordKeys))
	for key, value := range subject.Extra {
		merged[key] = value
	}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

func (subject *Subject) UnmarshalJSON(data []byte) error {
	record := subjectRecord{}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range subjectRecordKeys {
		delete(fields, key)
	}
	if len(fields) == 0 {
		fields = nil
	}

	*subject = Subject{
		ID:         record.ID,
		Name:       record.Name,
		Progress:   record.Progress,
		TasksTotal: record.TasksTotal,
		TasksDone:  record.TasksDone,
		Extra:      fields,
	}
	return nil
}
