package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/input"
	"currency-assistant/internal/ports/output"
	"currency-assistant/pkg/keylock"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ConversationEngine implements input.ConversationEngine
var _ input.ConversationEngine = (*ConversationEngine)(nil)

// EngineConfig struct - settings of the conversation engine
type EngineConfig struct {
	BaseCurrency string   // Currency every rate is expressed in
	Admins       []string // User IDs allowed to manage currencies, empty allows everyone
}

// stepFunc handles free text in one state. It either advances the session,
// clears it, or leaves it untouched after a validation failure.
type stepFunc func(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply

// command is a top-level input that is recognized in every state
type command struct {
	adminOnly bool
	run       func(ctx context.Context, session *domain.ConversationSession) domain.Reply
}

// ConversationEngine struct - per-user state machine driving the currency flows.
// Messages of one user are handled one at a time; different users run in parallel.
type ConversationEngine struct {
	manager      output.CurrencyManagerClient
	data         output.CurrencyDataClient
	sessions     output.SessionStore
	locks        *keylock.KeyLock
	baseCurrency string
	admins       map[string]struct{}
	commands     map[string]command
	transitions  map[domain.ConversationState]stepFunc
}

// NewConversationEngine func - Creates the conversation engine
func NewConversationEngine(manager output.CurrencyManagerClient, data output.CurrencyDataClient, sessions output.SessionStore, config EngineConfig) *ConversationEngine {
	baseCurrency := domain.NormalizeCurrencyName(config.BaseCurrency)
	if baseCurrency == "" {
		baseCurrency = "RUB"
	}

	admins := make(map[string]struct{}, len(config.Admins))
	for _, id := range config.Admins {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = struct{}{}
		}
	}

	e := &ConversationEngine{
		manager:      manager,
		data:         data,
		sessions:     sessions,
		locks:        keylock.New(),
		baseCurrency: baseCurrency,
		admins:       admins,
	}

	e.commands = map[string]command{
		CommandStart:          {run: e.startCommand},
		CommandManageCurrency: {adminOnly: true, run: e.manageCommand},
		CommandGetCurrencies:  {run: e.listCommand},
		CommandConvert:        {run: e.enter(domain.StateConvertName, msgEnterName)},
		ButtonAddCurrency:     {adminOnly: true, run: e.enter(domain.StateAddName, msgEnterName)},
		ButtonDeleteCurrency:  {adminOnly: true, run: e.enter(domain.StateDeleteName, msgEnterNameDelete)},
		ButtonUpdateCurrency:  {adminOnly: true, run: e.enter(domain.StateUpdateName, msgEnterNameUpdate)},
	}

	e.transitions = map[domain.ConversationState]stepFunc{
		domain.StateIdle:          e.idleStep,
		domain.StateMenu:          e.menuStep,
		domain.StateAddName:       e.addNameStep,
		domain.StateAddRate:       e.addRateStep,
		domain.StateDeleteName:    e.deleteNameStep,
		domain.StateUpdateName:    e.updateNameStep,
		domain.StateUpdateRate:    e.updateRateStep,
		domain.StateConvertName:   e.convertNameStep,
		domain.StateConvertAmount: e.convertAmountStep,
	}

	return e
}

// HandleMessage func - Use case: feed one text message of a user into its flow
func (e *ConversationEngine) HandleMessage(ctx context.Context, userID, text string) domain.Reply {
	unlock := e.locks.Lock(userID)
	defer unlock()

	session := e.loadSession(userID)
	text = strings.TrimSpace(text)

	var reply domain.Reply
	if cmd, name, ok := e.classify(text); ok {
		if cmd.adminOnly && !e.isAdmin(userID) {
			logrus.Warnf("User %s is not allowed to run %s", userID, name)
			return domain.NewReply(msgNoAccess)
		}
		logrus.Debugf("User %s runs %s, state %s dropped", userID, name, session.State)
		session.Clear()
		reply = cmd.run(ctx, session)
	} else if strings.HasPrefix(text, "/") {
		return domain.NewReply(msgUnknownCommand, e.availableCommands(userID)...)
	} else {
		step, ok := e.transitions[session.State]
		if !ok {
			logrus.Warnf("User %s has unknown state %q, resetting", userID, session.State)
			session.Clear()
			step = e.idleStep
		}
		reply = step(ctx, session, text)
	}

	e.saveSession(session)
	return reply
}

// Greeting func - Use case: command overview for a user
func (e *ConversationEngine) Greeting(userID string) domain.Reply {
	commands := e.availableCommands(userID)
	return domain.NewReply(fmt.Sprintf(msgWelcome, strings.Join(commands, ", ")), commands...)
}

// Reset func - Use case: drop the flow of a user
func (e *ConversationEngine) Reset(userID string) error {
	unlock := e.locks.Lock(userID)
	defer unlock()
	return e.sessions.DeleteSession(userID)
}

// classify recognizes top-level input. Slash commands match case-insensitively
// on the first word, menu buttons match their full label.
func (e *ConversationEngine) classify(text string) (command, string, bool) {
	name := text
	if strings.HasPrefix(text, "/") {
		fields := strings.Fields(text)
		name = strings.ToLower(fields[0])
	}
	cmd, ok := e.commands[name]
	return cmd, name, ok
}

func (e *ConversationEngine) isAdmin(userID string) bool {
	if len(e.admins) == 0 {
		return true
	}
	_, ok := e.admins[userID]
	return ok
}

func (e *ConversationEngine) loadSession(userID string) *domain.ConversationSession {
	session, err := e.sessions.GetSession(userID)
	if err != nil {
		logrus.Errorf("Failed to load session for user %s: %v", userID, err)
	}
	if session == nil {
		session = domain.NewConversationSession(userID)
	}
	return session
}

// saveSession keeps sessions with a flow in progress and drops idle ones
func (e *ConversationEngine) saveSession(session *domain.ConversationSession) {
	var err error
	if session.IsIdle() {
		err = e.sessions.DeleteSession(session.UserID)
	} else {
		err = e.sessions.UpdateSession(session)
	}
	if err != nil {
		logrus.Errorf("Failed to save session for user %s: %v", session.UserID, err)
	}
}

// Commands

func (e *ConversationEngine) startCommand(_ context.Context, session *domain.ConversationSession) domain.Reply {
	return e.Greeting(session.UserID)
}

func (e *ConversationEngine) manageCommand(_ context.Context, session *domain.ConversationSession) domain.Reply {
	session.Enter(domain.StateMenu)
	return domain.NewReply(msgChooseAction, menuButtons()...)
}

func (e *ConversationEngine) listCommand(ctx context.Context, session *domain.ConversationSession) domain.Reply {
	currencies, err := e.data.ListCurrencies(ctx)
	if err != nil {
		logrus.Errorf("Failed to list currencies for user %s: %v", session.UserID, err)
		return domain.NewReply(msgListFailed)
	}
	return domain.NewReply(formatCurrencyList(currencies, e.baseCurrency))
}

// enter builds a command that starts a flow with a prompt
func (e *ConversationEngine) enter(state domain.ConversationState, prompt string) func(context.Context, *domain.ConversationSession) domain.Reply {
	return func(_ context.Context, session *domain.ConversationSession) domain.Reply {
		session.Enter(state)
		return domain.NewReply(prompt)
	}
}

// Steps

func (e *ConversationEngine) idleStep(_ context.Context, session *domain.ConversationSession, _ string) domain.Reply {
	return domain.NewReply(msgChooseCommand, e.availableCommands(session.UserID)...)
}

func (e *ConversationEngine) menuStep(_ context.Context, _ *domain.ConversationSession, _ string) domain.Reply {
	return domain.NewReply(msgWrongAction, menuButtons()...)
}

func (e *ConversationEngine) addNameStep(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply {
	name, reply, ok := e.acceptName(text)
	if !ok {
		return reply
	}

	exists, err := e.currencyExists(ctx, name)
	if err != nil {
		return e.backendFailure(session, "add pre-check", err)
	}
	if exists {
		session.Clear()
		return domain.NewReply(msgCurrencyExists)
	}

	session.Advance(domain.StateAddRate, domain.SessionKeyCurrencyName, name)
	return domain.NewReply(fmt.Sprintf(msgEnterRate, e.baseCurrency))
}

func (e *ConversationEngine) addRateStep(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply {
	rate, err := domain.ParsePositiveDecimal(text)
	if err != nil {
		return domain.NewReply(msgInvalidRate)
	}

	name := session.Value(domain.SessionKeyCurrencyName)
	err = e.manager.Load(ctx, name, rate)
	switch {
	case errors.Is(err, domain.ErrCurrencyExists):
		session.Clear()
		return domain.NewReply(msgCurrencyConflict)
	case err != nil:
		return e.backendFailure(session, "load", err)
	}

	session.Clear()
	logrus.Infof("User %s added currency %s with rate %s", session.UserID, name, rate.String())
	return domain.NewReply(fmt.Sprintf(msgCurrencyAdded, name, rate.String(), e.baseCurrency))
}

func (e *ConversationEngine) deleteNameStep(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply {
	name, reply, ok := e.acceptName(text)
	if !ok {
		return reply
	}

	err := e.manager.DeleteCurrency(ctx, name)
	switch {
	case errors.Is(err, domain.ErrCurrencyNotFound):
		session.Clear()
		return domain.NewReply(msgNothingToDelete)
	case err != nil:
		return e.backendFailure(session, "delete", err)
	}

	session.Clear()
	logrus.Infof("User %s deleted currency %s", session.UserID, name)
	return domain.NewReply(fmt.Sprintf(msgCurrencyDeleted, name))
}

func (e *ConversationEngine) updateNameStep(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply {
	name, reply, ok := e.acceptName(text)
	if !ok {
		return reply
	}

	exists, err := e.currencyExists(ctx, name)
	if err != nil {
		return e.backendFailure(session, "update pre-check", err)
	}
	if !exists {
		session.Clear()
		return domain.NewReply(msgCurrencyNotFound)
	}

	session.Advance(domain.StateUpdateRate, domain.SessionKeyCurrencyName, name)
	return domain.NewReply(fmt.Sprintf(msgEnterNewRate, e.baseCurrency))
}

func (e *ConversationEngine) updateRateStep(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply {
	rate, err := domain.ParsePositiveDecimal(text)
	if err != nil {
		return domain.NewReply(msgInvalidRate)
	}

	name := session.Value(domain.SessionKeyCurrencyName)
	err = e.manager.UpdateCurrency(ctx, name, rate)
	switch {
	case errors.Is(err, domain.ErrCurrencyNotFound):
		session.Clear()
		return domain.NewReply(msgCurrencyNotFound)
	case err != nil:
		return e.backendFailure(session, "update", err)
	}

	session.Clear()
	logrus.Infof("User %s updated currency %s to rate %s", session.UserID, name, rate.String())
	return domain.NewReply(fmt.Sprintf(msgCurrencyUpdated, name, rate.String(), e.baseCurrency))
}

func (e *ConversationEngine) convertNameStep(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply {
	name, reply, ok := e.acceptName(text)
	if !ok {
		return reply
	}

	exists, err := e.currencyExists(ctx, name)
	if err != nil {
		return e.backendFailure(session, "convert pre-check", err)
	}
	if !exists {
		session.Clear()
		return domain.NewReply(msgCurrencyNotFound)
	}

	// only the name is kept, the rate is read again by the convert call
	session.Advance(domain.StateConvertAmount, domain.SessionKeyCurrencyName, name)
	return domain.NewReply(msgEnterAmount)
}

func (e *ConversationEngine) convertAmountStep(ctx context.Context, session *domain.ConversationSession, text string) domain.Reply {
	amount, err := domain.ParsePositiveDecimal(text)
	if err != nil {
		return domain.NewReply(msgInvalidAmount)
	}

	name := session.Value(domain.SessionKeyCurrencyName)
	converted, err := e.data.Convert(ctx, name, amount)
	switch {
	case errors.Is(err, domain.ErrCurrencyNotFound):
		session.Clear()
		return domain.NewReply(msgCurrencyNotFound)
	case err != nil:
		return e.backendFailure(session, "convert", err)
	}

	session.Clear()
	return domain.NewReply(fmt.Sprintf(msgConverted, amount.String(), name, domain.FormatMoney(converted), e.baseCurrency))
}

// Helpers

// acceptName normalizes a currency name; a rejected name keeps the state
func (e *ConversationEngine) acceptName(text string) (string, domain.Reply, bool) {
	name := domain.NormalizeCurrencyName(text)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxCurrencyNameLength {
		return "", domain.NewReply(fmt.Sprintf(msgInvalidName, domain.MaxCurrencyNameLength)), false
	}
	return name, domain.Reply{}, true
}

// currencyExists is an advisory check against the current list; the
// management service still decides on insert
func (e *ConversationEngine) currencyExists(ctx context.Context, name string) (bool, error) {
	currencies, err := e.data.ListCurrencies(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range currencies {
		if domain.SameCurrency(c.CurrencyName, name) {
			return true, nil
		}
	}
	return false, nil
}

// backendFailure ends the flow after an unexpected backend error
func (e *ConversationEngine) backendFailure(session *domain.ConversationSession, operation string, err error) domain.Reply {
	logrus.Errorf("Currency %s failed for user %s in state %s: %v", operation, session.UserID, session.State, err)
	session.Clear()
	return domain.NewReply(msgServiceFailed)
}
