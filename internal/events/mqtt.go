package events

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

const (
	topicPrefix    = "garage/jobs/"
	publishTimeout = 5 * time.Second
)

// MQTTPublisher publishes job lifecycle events as JSON payloads on the
// garage/jobs/<type> topic tree.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(broker, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(publishTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, err
	}
	return &MQTTPublisher{client: client}, nil
}

// Publish emits the event. Failures are logged and swallowed.
func (p *MQTTPublisher) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).WithField("event", event.Type).Error("failed to encode job event")
		return
	}

	token := p.client.Publish(topicPrefix+event.Type, 0, false, payload)
	if !token.WaitTimeout(publishTimeout) || token.Error() != nil {
		log.WithError(token.Error()).WithFields(log.Fields{
			"event":  event.Type,
			"job_id": event.JobID,
		}).Error("failed to publish job event")
	}
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
