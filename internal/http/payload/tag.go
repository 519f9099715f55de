package payload

import (
	"graphtrace/internal/core"

	"github.com/jellydator/validation"
)

type ScamDetailEntry struct {
	Reason        string `json:"reason"`
	ScamLink      string `json:"scamLink"`
	TwitterHandle string `json:"twitterHandle"`
}

type TagRequest struct {
	WalletAddress string           `json:"walletAddress"`
	TagType       string           `json:"tagType"`
	AddedBy       string           `json:"addedBy"`
	ScamDetail    *ScamDetailEntry `json:"scamDetail"`
}

func (t TagRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.WalletAddress, validation.Required),
		validation.Field(&t.TagType, validation.Required),
	)
}

func (t TagRequest) ToMessage() core.TagMessage {
	msg := core.TagMessage{
		WalletAddress: t.WalletAddress,
		TagType:       t.TagType,
	}
	if t.AddedBy != "" {
		addedBy := t.AddedBy
		msg.AddedBy = &addedBy
	}
	if t.ScamDetail != nil {
		info := core.ScamInfo{Reason: t.ScamDetail.Reason}
		if t.ScamDetail.ScamLink != "" {
			link := t.ScamDetail.ScamLink
			info.ScamLink = &link
		}
		if t.ScamDetail.TwitterHandle != "" {
			handle := t.ScamDetail.TwitterHandle
			info.TwitterHandle = &handle
		}
		msg.ScamDetail = &info
	}
	return msg
}
