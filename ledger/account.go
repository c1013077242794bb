package ledger

// Account holds one client's balances. The total is never stored; it is
// derived from available + held at snapshot time, which rules out the two
// ever drifting apart. Locked is monotonic: once a chargeback sets it, it
// stays set for the rest of the run.
type Account struct {
	Client    ClientID
	Available Money
	Held      Money
	Locked    bool
}

// The transition methods below take a value receiver and return the updated
// account. A failed transition therefore cannot leave a half-applied
// mutation behind: the caller only stores the result on success.

func (a Account) deposit(amount Money) (Account, error) {
	available, err := a.Available.Add(amount)
	if err != nil {
		return Account{}, err
	}

	a.Available = available
	return a, nil
}

func (a Account) withdraw(amount Money) (Account, error) {
	available, err := a.Available.Sub(amount)
	if err != nil {
		return Account{}, err
	}

	a.Available = available
	return a, nil
}

func (a Account) dispute(amount Money) (Account, error) {
	available, err := a.Available.Sub(amount)
	if err != nil {
		return Account{}, err
	}
	held, err := a.Held.Add(amount)
	if err != nil {
		return Account{}, err
	}

	a.Available = available
	a.Held = held
	return a, nil
}

func (a Account) resolve(amount Money) (Account, error) {
	held, err := a.Held.Sub(amount)
	if err != nil {
		return Account{}, err
	}
	available, err := a.Available.Add(amount)
	if err != nil {
		return Account{}, err
	}

	a.Available = available
	a.Held = held
	return a, nil
}

func (a Account) chargeback(amount Money) (Account, error) {
	held, err := a.Held.Sub(amount)
	if err != nil {
		return Account{}, err
	}

	a.Held = held
	a.Locked = true
	return a, nil
}

// Snapshot is the externally visible state of one account at the end of a
// replay (or of any prefix of one).
type Snapshot struct {
	Client    ClientID
	Available Money
	Held      Money
	Total     Money
	Locked    bool
}

// snapshot derives the account's snapshot. Available and held are each
// bounded by the ceiling, but their sum may exceed it, so the total is
// computed without the overflow check.
func (a *Account) snapshot() Snapshot {
	return Snapshot{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Available.addUnchecked(a.Held),
		Locked:    a.Locked,
	}
}
