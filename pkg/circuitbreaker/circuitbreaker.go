// Package circuitbreaker 实现熔断器模式（Circuit Breaker Pattern）
//
// 状态机：
// - CLOSED（正常）：请求正常通过，统计失败次数，达到阈值转OPEN
// - OPEN（熔断）：请求快速失败，不调用下游；经过Timeout后转HALF_OPEN
// - HALF_OPEN（探测）：放行少量请求探测下游；成功转CLOSED，失败转回OPEN
//
// 用于包裹对下游服务的同步调用（如图书服务调作者服务取作者名），
// 下游持续故障时避免每个请求都等到超时。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	// StateClosed 关闭状态（正常放行）
	StateClosed State = iota
	// StateOpen 打开状态（快速失败）
	StateOpen
	// StateHalfOpen 半开状态（探测恢复）
	StateHalfOpen
)

// String 状态转字符串（便于日志）
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrOpenState 熔断器打开，请求被拒绝
	ErrOpenState = errors.New("熔断器已打开，请求被拒绝")
	// ErrTooManyRequests 半开状态下探测请求数已达上限
	ErrTooManyRequests = errors.New("半开状态下请求过多")
)

// Counts 请求统计
type Counts struct {
	Requests             uint32 // 当前周期内的请求总数
	TotalSuccesses       uint32 // 成功总数
	TotalFailures        uint32 // 失败总数
	ConsecutiveSuccesses uint32 // 连续成功数
	ConsecutiveFailures  uint32 // 连续失败数
}

func (c *Counts) onSuccess() {
	c.Requests++
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) onFailure() {
	c.Requests++
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

func (c *Counts) clear() {
	*c = Counts{}
}

// Config 熔断器配置
type Config struct {
	// MaxRequests 半开状态下允许通过的最大探测请求数
	MaxRequests uint32
	// Interval 关闭状态下统计周期（周期结束后清零计数，0表示不清零）
	Interval time.Duration
	// Timeout 打开状态持续时间，超过后转半开
	Timeout time.Duration
	// ReadyToTrip 根据统计判断是否触发熔断（CLOSED→OPEN）
	ReadyToTrip func(counts Counts) bool
}

// CircuitBreaker 熔断器
// 并发安全：内部用互斥锁保护状态与计数
type CircuitBreaker struct {
	name   string
	config Config

	mu     sync.Mutex
	state  State
	counts Counts
	expiry time.Time // 当前状态的到期时间（OPEN→HALF_OPEN、CLOSED周期清零）
}

// NewCircuitBreaker 创建熔断器
func NewCircuitBreaker(name string, config Config) *CircuitBreaker {
	if config.MaxRequests == 0 {
		config.MaxRequests = 1
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.ReadyToTrip == nil {
		config.ReadyToTrip = func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 5
		}
	}

	cb := &CircuitBreaker{
		name:   name,
		config: config,
		state:  StateClosed,
	}
	cb.toNewGeneration(time.Now())
	return cb
}

// Name 返回熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// State 返回当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	state, _ := cb.currentState(time.Now())
	return state
}

// Counts 返回当前统计
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.counts
}

// Execute 执行请求
// 打开状态下直接返回ErrOpenState，不调用req；
// 半开状态下探测请求数超过MaxRequests时返回ErrTooManyRequests
func (cb *CircuitBreaker) Execute(req func() error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	err := req()
	cb.afterRequest(err == nil)
	return err
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()
	state, _ := cb.currentState(now)

	switch state {
	case StateOpen:
		return ErrOpenState
	case StateHalfOpen:
		if cb.counts.Requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}

	cb.counts.Requests++
	return nil
}

func (cb *CircuitBreaker) afterRequest(success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()
	state, _ := cb.currentState(now)

	// beforeRequest已计入Requests，这里只记成败
	// 状态切换会清零计数，在途请求落在新周期时不做回退
	if cb.counts.Requests > 0 {
		cb.counts.Requests--
	}
	if success {
		cb.onSuccess(state, now)
	} else {
		cb.onFailure(state, now)
	}
}

func (cb *CircuitBreaker) onSuccess(state State, now time.Time) {
	switch state {
	case StateClosed:
		cb.counts.onSuccess()
	case StateHalfOpen:
		cb.counts.onSuccess()
		// 探测成功数达到MaxRequests即认为下游恢复
		if cb.counts.ConsecutiveSuccesses >= cb.config.MaxRequests {
			cb.setState(StateClosed, now)
		}
	}
}

func (cb *CircuitBreaker) onFailure(state State, now time.Time) {
	switch state {
	case StateClosed:
		cb.counts.onFailure()
		if cb.config.ReadyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		// 探测失败，立即回到打开状态
		cb.counts.onFailure()
		cb.setState(StateOpen, now)
	}
}

// currentState 结合到期时间计算当前状态（OPEN超时自动转HALF_OPEN）
func (cb *CircuitBreaker) currentState(now time.Time) (State, bool) {
	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 && cb.expiry.Before(now) {
			cb.toNewGeneration(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
			return StateHalfOpen, true
		}
	}
	return cb.state, false
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}
	cb.state = state
	cb.toNewGeneration(now)
}

// toNewGeneration 开启新统计周期
func (cb *CircuitBreaker) toNewGeneration(now time.Time) {
	cb.counts.clear()
	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 {
			cb.expiry = now.Add(cb.config.Interval)
		}
	case StateOpen:
		cb.expiry = now.Add(cb.config.Timeout)
	default:
		cb.expiry = time.Time{}
	}
}
