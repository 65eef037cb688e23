package controller

import (
	"encoding/json"
	"fmt"
	"gitlab.com/open-soft/go-rebalance-bot/src/service/exchange"
	"net/http"
)

type RebalanceController struct {
	RebalanceService *exchange.RebalanceService
}

func (r *RebalanceController) PostDryRunAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if req.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)

		return
	}

	encoded, _ := json.Marshal(r.RebalanceService.DryRun())
	fmt.Fprintf(w, string(encoded))
}

func (r *RebalanceController) PostExecuteSellsAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if req.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)

		return
	}

	encoded, _ := json.Marshal(r.RebalanceService.ExecuteSells())
	fmt.Fprintf(w, string(encoded))
}

func (r *RebalanceController) PostExecuteBuysAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if req.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)

		return
	}

	encoded, _ := json.Marshal(r.RebalanceService.ExecuteBuys())
	fmt.Fprintf(w, string(encoded))
}

type orderTypeRequest struct {
	OrderType string `json:"orderType"`
}

func (r *RebalanceController) PutOrderTypeAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if req.Method != http.MethodPut {
		http.Error(w, "Only PUT method is allowed", http.StatusMethodNotAllowed)

		return
	}

	var request orderTypeRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err := r.RebalanceService.SetOrderType(request.OrderType); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	fmt.Fprintf(w, `{"orderType": "%s"}`, r.RebalanceService.OrderType())
}
