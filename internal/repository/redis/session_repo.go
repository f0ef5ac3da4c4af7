package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	retryBaseDelay     = 5 * time.Millisecond
	retryMaxDelay      = 100 * time.Millisecond
)

// SessionRepo хранит сессии в Redis в виде JSON с TTL, продлеваемым при каждом изменении.
type SessionRepo struct {
	client      *clients.RedisClient
	conv        converter.SessionConverter
	keyPrefix   string
	ttl         time.Duration
	maxAttempts int
	logger      logger.Logger
	now         func() time.Time
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter,
	cfg *cfg.RedisCfg, ttl time.Duration, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client:      client,
		conv:        conv,
		keyPrefix:   cfg.KeyPrefix,
		ttl:         ttl,
		maxAttempts: defaultMaxAttempts,
		logger:      logger,
		now:         time.Now,
	}
}

// Get возвращает сессию по ID или e.ErrSessionNotFound. Повреждённая запись считается отсутствующей.
func (s *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Client.Get(ctx, s.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.Wrap(id, e.ErrSessionNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := s.unmarshalSession(data)
	if err != nil {
		s.logger.Warnf("Redis unmarshal failed, ignoring session %s: %v", id, e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(id, e.ErrSessionNotFound)
	}

	return session, nil
}

// Update читает сессию под WATCH, применяет fn и записывает результат в MULTI/EXEC.
// Если ключ изменился между чтением и записью, попытка повторяется с экспоненциальной задержкой.
func (s *SessionRepo) Update(ctx context.Context, id string, fn func(session *domain.Session) error) (*domain.Session, error) {
	key := s.sessionKey(id)

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		var result *domain.Session

		err := s.client.Client.Watch(ctx, func(tx *r.Tx) error {
			session, err := s.load(ctx, tx, id)
			if err != nil {
				return err
			}

			if err := fn(session); err != nil {
				return err
			}
			session.UpdatedAt = s.now()

			data, err := s.marshalSession(session)
			if err != nil {
				return e.Wrap(whereami.WhereAmI(), err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe r.Pipeliner) error {
				pipe.Set(ctx, key, data, s.ttl)
				return nil
			})
			if err != nil {
				return err
			}

			result = session
			return nil
		}, key)

		if err == nil {
			return result, nil
		}

		if !errors.Is(err, r.TxFailedErr) {
			return nil, err
		}

		s.logger.Debugf("session %s changed concurrently, retrying (attempt %d)", id, attempt+1)
		if err := jitter.Sleep(ctx, jitter.ExponentialBackoff(retryBaseDelay, retryMaxDelay, attempt, jitter.DefaultJitter)); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	s.logger.Warnf("session %s: giving up after %d conflicting updates", id, s.maxAttempts)
	return nil, e.Wrap(id, e.ErrSessionConflict)
}

// load читает сессию внутри транзакции; отсутствующая сессия создаётся пустой.
func (s *SessionRepo) load(ctx context.Context, tx *r.Tx, id string) (*domain.Session, error) {
	data, err := tx.Get(ctx, s.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return domain.NewSession(id, s.now()), nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := s.unmarshalSession(data)
	if err != nil {
		// повреждённую запись заменяем пустой сессией
		s.logger.Warnf("Redis unmarshal failed, resetting session %s: %v", id, e.Wrap(whereami.WhereAmI(), err))
		return domain.NewSession(id, s.now()), nil
	}

	return session, nil
}

// marshalSession сериализует сессию в JSON
func (s *SessionRepo) marshalSession(session *domain.Session) ([]byte, error) {
	return json.Marshal(s.conv.ToRedisModel(session))
}

// unmarshalSession десериализует JSON из Redis в сессию
func (s *SessionRepo) unmarshalSession(data []byte) (*domain.Session, error) {
	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return s.conv.ToEntity(&model)
}

// sessionKey возвращает Redis-ключ сессии
func (s *SessionRepo) sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", s.keyPrefix, id)
}
