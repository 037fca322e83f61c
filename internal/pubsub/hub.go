package pubsub

import "sync"

// カタログ全体の変更通知トピック
const TopicCatalog = "catalog"

// カート単位の変更通知トピック
func TopicCart(cartID string) string {
	return "cart:" + cartID
}

// Hub はトピック単位のイベント通知。ストアの書き込み後にPublishされ、
// 購読側は通知を受けるたびに最新スナップショットを読み直す。
// イベント自体にペイロードは無い（通知のみ）。
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan struct{}]struct{}),
	}
}

// Publish はトピックの購読者全員を起こす。
// chはバッファ1なので、処理が追いつかない購読者への通知はまとめられる。
func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe は通知チャネルと解除関数を返す。解除後のチャネルはcloseされる。
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan struct{}]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[topic], ch)
			if len(h.subs[topic]) == 0 {
				delete(h.subs, topic)
			}
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}
