package entity

type Profile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	Username       string `json:"username"`
	Handle         string `json:"handle"`
	AvatarURL      string `json:"avatar_url"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	IsFollowing    bool   `json:"is_following"`
	IsOwner        bool   `json:"is_owner"`
}

// FollowEntry is one row of a followers/following list, seen by the viewer.
type FollowEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatar_url"`
	IsFollowing bool   `json:"is_following"`
	IsSelf      bool   `json:"is_self"`
}

type FollowList struct {
	Users   []FollowEntry `json:"users"`
	Count   int           `json:"count"`
	Message string        `json:"message,omitempty"`
}

// FollowResult is the membership after a toggle, re-read from storage.
type FollowResult struct {
	Following      bool  `json:"following"`
	FollowersCount int64 `json:"followers_count"`
}
