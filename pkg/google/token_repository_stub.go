package google

import (
	"context"

	"golang.org/x/oauth2"
)

type stubAuthorization struct {
	nonce string
	token *oauth2.Token
}

type StubTokenRepository struct {
	data map[int]stubAuthorization
}

func NewStubTokenRepository() *StubTokenRepository {
	return &StubTokenRepository{data: map[int]stubAuthorization{}}
}

func (s *StubTokenRepository) StartAuthorization(_ context.Context, userId int, nonce string) error {
	s.data[userId] = stubAuthorization{nonce: nonce}
	return nil
}

func (s *StubTokenRepository) CompleteAuthorization(_ context.Context, nonce string, token *oauth2.Token) error {
	for userId, auth := range s.data {
		if nonce != "" && auth.nonce == nonce {
			stored := *token
			s.data[userId] = stubAuthorization{token: &stored}
			return nil
		}
	}
	return ErrUnknownState
}

func (s *StubTokenRepository) GetToken(_ context.Context, userId int) (*oauth2.Token, error) {
	auth, ok := s.data[userId]
	if !ok || auth.token == nil {
		return nil, nil
	}
	token := *auth.token
	return &token, nil
}

func (s *StubTokenRepository) Delete(_ context.Context, userId int) error {
	delete(s.data, userId)
	return nil
}
