package msg

type OutputFormat uint

const (
	OutputFormatUndefined OutputFormat = iota
	OutputFormatMarkdown1
	OutputFormatMarkdown2
	OutputFormatHTML
)

const (
	// PredefinedResponseOutline is a reply keyboard button, pressing it sends
	// its text back as a message.
	PredefinedResponseOutline = "outline"
	// PredefinedResponseInline is an inline button, pressing it sends Data as
	// a callback.
	PredefinedResponseInline = "inline"
)

type PredefinedResponse struct {
	Text string
	Data string
	Type string
}

type PredefinedResponseOptions struct {
	Responses []PredefinedResponse
	IsTemp    bool
}

type Options struct {
	OutputFormat              OutputFormat
	PredefinedResponseOptions *PredefinedResponseOptions
}

func (o *Options) WithFormat(f OutputFormat) *Options {
	o.OutputFormat = f
	return o
}

// WithInlineButton adds a button dispatching the callback command data.
func (o *Options) WithInlineButton(text, data string) *Options {
	return o.WithPredefinedResponse(PredefinedResponse{
		Text: text,
		Data: data,
		Type: PredefinedResponseInline,
	})
}

// WithReplyButton adds a reply keyboard button dispatching the reply command text.
func (o *Options) WithReplyButton(text string) *Options {
	return o.WithPredefinedResponse(PredefinedResponse{
		Text: text,
		Type: PredefinedResponseOutline,
	})
}

func (o *Options) WithPredefinedResponse(resp PredefinedResponse) *Options {
	if o.PredefinedResponseOptions == nil {
		o.PredefinedResponseOptions = &PredefinedResponseOptions{}
	}

	o.PredefinedResponseOptions.Responses = append(o.PredefinedResponseOptions.Responses, resp)

	return o
}

func (o *Options) WithIsTempPredefinedResponse() *Options {
	if o.PredefinedResponseOptions == nil {
		o.PredefinedResponseOptions = &PredefinedResponseOptions{}
	}
	o.PredefinedResponseOptions.IsTemp = true

	return o
}

func (o *Options) GetFormat() OutputFormat {
	if o == nil {
		return OutputFormatUndefined
	}

	return o.OutputFormat
}

func (o *Options) GetPredefinedResponses() []PredefinedResponse {
	if o == nil || o.PredefinedResponseOptions == nil {
		return nil
	}

	return o.PredefinedResponseOptions.Responses
}

func (o *Options) IsTempPredefinedResponse() bool {
	if o == nil || o.PredefinedResponseOptions == nil {
		return false
	}

	return o.PredefinedResponseOptions.IsTemp
}
