package voyageai

// embedRequest is the JSON body of an embeddings call.
type embedRequest struct {
	Input      []string `json:"input"`
	Model      string   `json:"model"`
	Truncation bool     `json:"truncation"`
	InputType  string   `json:"input_type,omitempty"`
}

// embedItem is one entry of the response's data array. Index is the
// position of the corresponding input text; the provider does not
// guarantee that items arrive in input order.
type embedItem struct {
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

// embedResponse covers both the success and the error shape of the
// embeddings endpoint. On success Data is populated; on failure Data is
// absent and Detail carries the provider's message.
type embedResponse struct {
	Data   []embedItem `json:"data"`
	Model  string      `json:"model"`
	Detail string      `json:"detail"`
	Usage  usage       `json:"usage"`
}

type usage struct {
	TotalTokens int `json:"total_tokens"`
}
