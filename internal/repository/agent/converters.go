package agent

import (
	"fooddelivery/internal/entities"
)

func ToDomain(a *AgentDB) *entities.DeliveryAgent {
	if a == nil {
		return nil
	}

	orders := a.CurrentOrders
	if orders == nil {
		orders = []string{}
	}

	return &entities.DeliveryAgent{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		CurrentOrders: orders,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func FromDomainModify(agentModify *entities.DeliveryAgentModify) *AgentModifyDB {
	if agentModify == nil {
		return nil
	}
	agentDB := &AgentModifyDB{}

	if agentModify.ID != nil {
		agentDB.ID = agentModify.ID
	}
	if agentModify.Name != nil {
		agentDB.Name = agentModify.Name
	}
	if agentModify.Phone != nil {
		agentDB.Phone = agentModify.Phone
	}

	return agentDB
}

func ToDomainList(agentsDB []AgentDB) []entities.DeliveryAgent {
	if len(agentsDB) == 0 {
		return []entities.DeliveryAgent{}
	}

	result := make([]entities.DeliveryAgent, len(agentsDB))
	for i, agentDB := range agentsDB {
		result[i] = *ToDomain(&agentDB)
	}
	return result
}
