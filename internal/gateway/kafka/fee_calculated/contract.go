//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_calculated_test
package fee_calculated

import (
	"github.com/IBM/sarama"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
