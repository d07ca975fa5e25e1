package consts

const (
	ModelLikeCountKey    = "model:like:count:"
	ModelCommentCountKey = "model:comment:count:"
	ModelRatingCountKey  = "model:rating:count:"
	ModelViewCountKey    = "model:view:count:"
	ModelDirtyKey        = "model:dirty"
	TokenBlacklistKey    = "token:blacklist:"
	TagSuggestKey        = "tag:suggest:"
)

const (
	ModelHealthLock      = "model:health:lock"
	ModelHealthStatusKey = "model:health:status:"
)
