package dto

import "social-spectrum-server/internal/common/httpx"

type LikeRequest struct {
	PostID httpx.FlexibleID `json:"postId"`
}
