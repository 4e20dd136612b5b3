package rest

import (
	"github.com/tjwls11/diary111/internal/domain"
	"github.com/tjwls11/diary111/internal/service/diary"
)

// diaryJSON is the wire shape of a diary entry.
type diaryJSON struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	One     string `json:"one"`
	Content string `json:"content"`
}

func toDiaryJSON(e *domain.DiaryEntry) diaryJSON {
	return diaryJSON{
		ID:      e.ID,
		Date:    e.Date.Format(diary.DateLayout),
		Title:   e.Title,
		One:     e.One,
		Content: e.Content,
	}
}

func toDiaryListJSON(entries []domain.DiaryEntry) []diaryJSON {
	out := make([]diaryJSON, 0, len(entries))
	for i := range entries {
		out = append(out, toDiaryJSON(&entries[i]))
	}
	return out
}

// markJSON is the wire shape of one calendar day mark.
type markJSON struct {
	Date  string  `json:"date"`
	Color *string `json:"color"`
	Tag   *string `json:"tag"`
}

func toMarkListJSON(marks []domain.CalendarMark) []markJSON {
	out := make([]markJSON, 0, len(marks))
	for _, m := range marks {
		out = append(out, markJSON{
			Date:  m.Date.Format(diary.DateLayout),
			Color: m.Color,
			Tag:   m.Tag,
		})
	}
	return out
}

// userJSON is the wire shape of a user profile.
type userJSON struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Coin           int64   `json:"coin"`
	ProfilePicture *string `json:"profilePicture"`
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{
		UserID:         u.ID,
		Name:           u.Name,
		Coin:           u.Coin,
		ProfilePicture: u.ProfilePicture,
	}
}

// stickerJSON is the wire shape of a catalog sticker.
type stickerJSON struct {
	StickerID int64  `json:"sticker_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Price     int64  `json:"price"`
}

func toStickerListJSON(stickers []domain.Sticker) []stickerJSON {
	out := make([]stickerJSON, 0, len(stickers))
	for _, s := range stickers {
		out = append(out, stickerJSON{
			StickerID: s.ID,
			Name:      s.Name,
			ImageURL:  s.ImageURL,
			Price:     s.Price,
		})
	}
	return out
}

func toOwnedStickerListJSON(owned []domain.OwnedSticker) []stickerJSON {
	out := make([]stickerJSON, 0, len(owned))
	for _, s := range owned {
		out = append(out, stickerJSON{
			StickerID: s.StickerID,
			Name:      s.Name,
			ImageURL:  s.ImageURL,
		})
	}
	return out
}
