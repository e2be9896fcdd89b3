package ledger

import "github.com/sirupsen/logrus"

// LogSink renders every ledger record as a structured logrus entry.
type LogSink struct {
	log *logrus.Logger
}

var _ Sink = (*LogSink)(nil)

// NewLogSink builds a sink writing to log, or to the logrus standard logger
// when log is nil.
func NewLogSink(log *logrus.Logger) *LogSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogSink{log: log}
}

func (s *LogSink) MintRecorded(r MintRecord) {
	s.log.WithFields(logrus.Fields{
		"token":     r.Token,
		"lot":       r.Lot.String(),
		"recipient": r.Recipient.String(),
		"supply":    r.InitialSupply,
	}).Info("token type minted")
}

func (s *LogSink) DepositRecorded(r DepositRecord) {
	s.log.WithFields(logrus.Fields{
		"token":    r.Token,
		"epoch":    r.Epoch,
		"amount":   r.Amount,
		"supply":   r.SupplySnapshot,
		"pool":     r.PoolBalance,
		"operator": r.Operator.String(),
	}).Info("revenue deposited")
}

func (s *LogSink) WithdrawalRecorded(r WithdrawalRecord) {
	s.log.WithFields(logrus.Fields{
		"token":       r.Token,
		"lot":         r.Lot.String(),
		"owner":       r.Owner.String(),
		"epochs":      r.Epochs,
		"amount":      r.Amount,
		"pool":        r.PoolBalance,
		"claimed":     r.CumulativeClaimed,
		"lot_balance": r.LotBalance,
	}).Info("revenue withdrawn")
}

func (s *LogSink) TransferRecorded(r TransferRecord) {
	s.log.WithFields(logrus.Fields{
		"token":    r.Token,
		"from_lot": r.FromLot.String(),
		"to_lot":   r.ToLot.String(),
		"from":     r.From.String(),
		"to":       r.To.String(),
		"amount":   r.Amount,
		"carried":  r.CarriedClaimed,
		"epochs":   r.EpochCount,
	}).Info("lot transferred")
}

func (s *LogSink) MergeRecorded(r MergeRecord) {
	s.log.WithFields(logrus.Fields{
		"token":   r.Token,
		"into":    r.Into.String(),
		"from":    r.From.String(),
		"owner":   r.Owner.String(),
		"balance": r.Balance,
		"claimed": r.CumulativeClaimed,
	}).Info("lots merged")
}
