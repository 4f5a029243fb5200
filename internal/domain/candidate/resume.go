package candidate

// Resume is an uploaded document. Content is the base64 encoded file.
type Resume struct {
	ID          string  `json:"id"`
	CandidateID *string `json:"candidateId"`
	Filename    string  `json:"filename"`
	Content     *string `json:"content"`
	UploadedAt  string  `json:"uploadedAt"`
}

type NewResume struct {
	CandidateID *string
	Filename    string
	Content     *string
}

func (r Resume) Clone() Resume {
	out := r
	out.CandidateID = cloneString(r.CandidateID)
	out.Content = cloneString(r.Content)
	return out
}
