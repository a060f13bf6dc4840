package domain

import (
	"crypto/md5"

	"github.com/google/uuid"
)

type Account struct {
	Name         string
	UUID         string
	AccessToken  string
	RefreshToken string
}

const (
	UserTypeMSA    = "msa"
	UserTypeLegacy = "legacy"

	offlineAccessToken = "0"
)

// Player is the identity substituted into launch templates.
type Player struct {
	Name        string
	UUID        string
	AccessToken string
	UserType    string
}

func (a Account) Player() Player {
	return Player{
		Name:        a.Name,
		UUID:        a.UUID,
		AccessToken: a.AccessToken,
		UserType:    UserTypeMSA,
	}
}

// OfflinePlayer derives the same name based UUID the game server uses for
// unauthenticated players.
func OfflinePlayer(name string) Player {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	id := uuid.UUID(sum)
	return Player{
		Name:        name,
		UUID:        id.String(),
		AccessToken: offlineAccessToken,
		UserType:    UserTypeLegacy,
	}
}
