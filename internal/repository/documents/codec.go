package documents

import (
	"encoding/json"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/docstore"
)

func encode(entity any) (docstore.Document, error) {
	body, err := json.Marshal(entity)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode entity", err)
	}
	var doc docstore.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode entity", err)
	}
	return doc, nil
}

func decode(doc docstore.Document, entity any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to decode document", err)
	}
	if err := json.Unmarshal(body, entity); err != nil {
		return common.NewError(common.CodeInternal, "failed to decode document", err)
	}
	return nil
}
