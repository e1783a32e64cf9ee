package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedCalendar guarda a lista de feriados do ano no Redis. Erro de
// cache nunca derruba a consulta: cai para o cliente HTTP.
type CachedCalendar struct {
	next *Client
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewCachedCalendar(
	next *Client,
	rdb *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *CachedCalendar {
	return &CachedCalendar{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log,
	}
}

func (c *CachedCalendar) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	key := fmt.Sprintf("feriados:%d", date.Year())

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var holidays []Holiday
		if err := json.Unmarshal(data, &holidays); err == nil {
			return containsDate(holidays, date), nil
		}
	} else if err != redis.Nil {
		c.log.Warn("cache de feriados indisponível", zap.Error(err))
	}

	holidays, err := c.next.Holidays(ctx, date.Year())
	if err != nil {
		return false, err
	}

	if data, err := json.Marshal(holidays); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("falha ao gravar cache de feriados", zap.Error(err))
		}
	}

	return containsDate(holidays, date), nil
}

var _ Calendar = (*CachedCalendar)(nil)
